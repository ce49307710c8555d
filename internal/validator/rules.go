package validator

import (
	"log"

	"artisanhub/internal/auth"
	"artisanhub/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the project's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("strong-password", validateStrongPassword)
}

func validateUserRole(fl validator.FieldLevel) bool {
	role := models.UserRole(fl.Field().String())
	return role == models.UserRoleCustomer || role == models.UserRoleArtisan
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	status := models.ApplicationStatus(fl.Field().String())
	switch status {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	}
	return false
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	return auth.IsStrongPassword(fl.Field().String())
}
