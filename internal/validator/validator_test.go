package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong-password"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupPayload{Email: "not-an-email", Password: "Abcdef12", Role: "customer"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
}

func TestValidateAcceptsValidPayload(t *testing.T) {
	v := New()

	err := v.Validate(&signupPayload{Email: "ada@example.com", Password: "Abcdef12", Role: "artisan"})
	assert.NoError(t, err)
}

func TestCustomRules(t *testing.T) {
	v := New()

	t.Run("rejects unknown role", func(t *testing.T) {
		err := v.Validate(&signupPayload{Email: "ada@example.com", Password: "Abcdef12", Role: "admin"})
		require.Error(t, err)
		verr := err.(*ValidationError)
		assert.Equal(t, "Must be 'customer' or 'artisan'", verr.Errors["role"])
	})

	t.Run("rejects weak password", func(t *testing.T) {
		err := v.Validate(&signupPayload{Email: "ada@example.com", Password: "weak", Role: "customer"})
		require.Error(t, err)
		verr := err.(*ValidationError)
		assert.Contains(t, verr.Errors["password"], "at least 8 characters")
	})

	t.Run("application status", func(t *testing.T) {
		type decision struct {
			Status string `json:"status" validate:"required,is-application-status"`
		}

		assert.NoError(t, v.Validate(&decision{Status: "accepted"}))

		err := v.Validate(&decision{Status: "maybe"})
		require.Error(t, err)
		verr := err.(*ValidationError)
		assert.Equal(t, "Must be 'pending', 'accepted' or 'rejected'", verr.Errors["status"])
	})
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "Must be a valid email address"}}
	assert.Contains(t, err.Error(), "Validation failed")
	assert.Contains(t, err.Error(), "email")
}
