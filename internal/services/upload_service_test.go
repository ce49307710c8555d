package services

import (
	"context"
	"strings"
	"testing"

	"artisanhub/internal/config"
	"artisanhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFixture(t *testing.T) (UploadService, *fakeStorage, *fakeUserRepo, string) {
	t.Helper()

	store := newFakeStorage()
	userRepo := newFakeUserRepo()
	user := &models.User{Name: "Ada", Email: "ada@test.com", Role: models.UserRoleCustomer}
	require.NoError(t, userRepo.Create(user))

	service := NewUploadService(store, userRepo, config.UploadConfig{
		MaxSize:      1 << 20,
		AllowedTypes: []string{".png", ".jpg", ".jpeg", ".gif"},
	})
	return service, store, userRepo, user.ID
}

func TestUploadProfilePicture(t *testing.T) {
	service, store, userRepo, userID := uploadFixture(t)
	ctx := context.Background()

	t.Run("stores the file and updates the profile", func(t *testing.T) {
		resp, err := service.UploadProfilePicture(ctx, userID, "avatar.png", 100, strings.NewReader("img"))
		require.NoError(t, err)
		assert.Equal(t, "/uploads/avatar.png", resp.URL)

		user, err := userRepo.FindByID(userID)
		require.NoError(t, err)
		assert.Equal(t, resp.URL, user.ProfilePic)
	})

	t.Run("colliding names get numeric suffixes", func(t *testing.T) {
		resp, err := service.UploadProfilePicture(ctx, userID, "avatar.png", 100, strings.NewReader("second"))
		require.NoError(t, err)
		assert.Equal(t, "/uploads/avatar_1.png", resp.URL)

		resp, err = service.UploadProfilePicture(ctx, userID, "avatar.png", 100, strings.NewReader("third"))
		require.NoError(t, err)
		assert.Equal(t, "/uploads/avatar_2.png", resp.URL)

		// The first file is untouched.
		exists, err := store.Exists(ctx, "avatar.png")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		_, err := service.UploadProfilePicture(ctx, userID, "script.sh", 10, strings.NewReader("#!"))
		require.Error(t, err)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		_, err := service.UploadProfilePicture(ctx, userID, "big.png", 2<<20, strings.NewReader("x"))
		require.Error(t, err)
	})

	t.Run("strips path components from the name", func(t *testing.T) {
		resp, err := service.UploadProfilePicture(ctx, userID, "../../etc/passwd.png", 10, strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, "/uploads/passwd.png", resp.URL)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := service.UploadProfilePicture(ctx, "missing", "pic.png", 10, strings.NewReader("x"))
		require.Error(t, err)
	})
}
