package services

import (
	"testing"

	"artisanhub/internal/models"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func addArtisan(t *testing.T, repo *fakeArtisanRepo, name, location string, lat, lng *float64, skills ...string) *models.ArtisanProfile {
	t.Helper()
	profile := &models.ArtisanProfile{
		Location:  location,
		Latitude:  lat,
		Longitude: lng,
		User:      models.User{Name: name},
	}
	require.NoError(t, profile.SetSkills(skills))
	require.NoError(t, repo.Create(profile))
	return profile
}

func TestSearchArtisansKeyword(t *testing.T) {
	repo := newFakeArtisanRepo()
	service := NewSearchService(repo)

	addArtisan(t, repo, "Ada", "New Lagos Market", nil, nil, "plumbing")
	addArtisan(t, repo, "Bayo", "Abuja", nil, nil, "carpentry")

	t.Run("matches case-insensitive substrings", func(t *testing.T) {
		results, err := service.SearchArtisans(&dto.SearchArtisansRequest{Location: "lagos"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Ada", results[0].Name)
		assert.Nil(t, results[0].DistanceKm)
	})

	t.Run("no match yields an empty list", func(t *testing.T) {
		results, err := service.SearchArtisans(&dto.SearchArtisansRequest{Location: "Nairobi"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("missing picture falls back to the placeholder", func(t *testing.T) {
		results, err := service.SearchArtisans(&dto.SearchArtisansRequest{Location: "Lagos"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, PlaceholderProfilePic, results[0].ProfilePic)
	})
}

func TestSearchArtisansRadius(t *testing.T) {
	repo := newFakeArtisanRepo()
	service := NewSearchService(repo)

	// Searcher at the origin; 0.1 degrees of latitude is roughly 11 km.
	addArtisan(t, repo, "Near", "A", floatPtr(0.1), floatPtr(0), "tiling")
	addArtisan(t, repo, "Mid", "B", floatPtr(0.2), floatPtr(0), "tiling")
	addArtisan(t, repo, "Far", "C", floatPtr(1.0), floatPtr(0), "tiling")
	addArtisan(t, repo, "NoCoords", "D", nil, nil, "tiling")

	t.Run("keeps only artisans inside the radius, sorted by distance", func(t *testing.T) {
		results, err := service.SearchArtisans(&dto.SearchArtisansRequest{
			Lat: floatPtr(0), Lng: floatPtr(0),
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Near", results[0].Name)
		assert.Equal(t, "Mid", results[1].Name)

		require.NotNil(t, results[0].DistanceKm)
		require.NotNil(t, results[1].DistanceKm)
		assert.Less(t, *results[0].DistanceKm, *results[1].DistanceKm)
	})

	t.Run("radius mode wins when both inputs are present", func(t *testing.T) {
		results, err := service.SearchArtisans(&dto.SearchArtisansRequest{
			Location: "A",
			Lat:      floatPtr(0), Lng: floatPtr(0),
		})
		require.NoError(t, err)
		// "A", "B" both match by distance; the keyword is ignored.
		assert.Len(t, results, 2)
	})
}

func TestSearchArtisansNoInput(t *testing.T) {
	service := NewSearchService(newFakeArtisanRepo())

	_, err := service.SearchArtisans(&dto.SearchArtisansRequest{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}
