package services

import (
	"testing"

	"artisanhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService(t *testing.T) {
	favoriteRepo := newFakeFavoriteRepo()
	artisanRepo := newFakeArtisanRepo()
	service := NewFavoriteService(favoriteRepo, artisanRepo)

	artisan := addArtisan(t, artisanRepo, "Ada", "Lagos", nil, nil, "plumbing")
	userID := "user-1"

	t.Run("first bookmark succeeds", func(t *testing.T) {
		result, err := service.AddFavorite(userID, artisan.ID)
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("duplicate bookmark is informational", func(t *testing.T) {
		result, err := service.AddFavorite(userID, artisan.ID)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Message)

		favorites, err := service.GetFavorites(userID)
		require.NoError(t, err)
		assert.Len(t, favorites, 1)
	})

	t.Run("unknown artisan is not found", func(t *testing.T) {
		_, err := service.AddFavorite(userID, "missing")
		require.Error(t, err)
	})

	t.Run("listing carries artisan details", func(t *testing.T) {
		favorites, err := service.GetFavorites(userID)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, artisan.ID, favorites[0].ArtisanID)
	})

	t.Run("removal is idempotent", func(t *testing.T) {
		require.NoError(t, service.RemoveFavorite(userID, artisan.ID))
		require.NoError(t, service.RemoveFavorite(userID, artisan.ID))

		favorites, err := service.GetFavorites(userID)
		require.NoError(t, err)
		assert.Empty(t, favorites)
	})
}

func TestFavoriteServiceRacingDuplicate(t *testing.T) {
	favoriteRepo := newFakeFavoriteRepo()
	artisanRepo := newFakeArtisanRepo()
	service := NewFavoriteService(favoriteRepo, artisanRepo)

	artisan := addArtisan(t, artisanRepo, "Bayo", "Abuja", nil, nil, "carpentry")

	// Simulate the row appearing between the existence check and the
	// insert: the unique-violation path degrades to the same
	// informational result.
	require.NoError(t, favoriteRepo.Create(&models.Favorite{UserID: "user-2", ArtisanID: artisan.ID}))

	result, err := service.AddFavorite("user-2", artisan.ID)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
