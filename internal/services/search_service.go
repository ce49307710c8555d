package services

import (
	"sort"
	"strings"

	"artisanhub/internal/algorithms"
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

// PlaceholderProfilePic is served when an artisan has no picture.
const PlaceholderProfilePic = "https://via.placeholder.com/150"

type SearchService interface {
	SearchArtisans(req *dto.SearchArtisansRequest) ([]dto.ArtisanSearchResult, error)
}

type SearchServiceImpl struct {
	artisanRepo repositories.ArtisanRepository
}

func NewSearchService(artisanRepo repositories.ArtisanRepository) SearchService {
	return &SearchServiceImpl{artisanRepo: artisanRepo}
}

// SearchArtisans runs radius mode when both coordinates are present,
// keyword mode when a location string is given, and rejects the request
// otherwise.
func (s *SearchServiceImpl) SearchArtisans(req *dto.SearchArtisansRequest) ([]dto.ArtisanSearchResult, error) {
	if req.RadiusMode() {
		return s.searchByRadius(*req.Lat, *req.Lng)
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, apperrors.NewBadRequestError("Provide a location keyword or lat/lng coordinates")
	}
	return s.searchByKeyword(location)
}

func (s *SearchServiceImpl) searchByKeyword(location string) ([]dto.ArtisanSearchResult, error) {
	profiles, err := s.artisanRepo.SearchByLocation(location)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]dto.ArtisanSearchResult, 0, len(profiles))
	for i := range profiles {
		results = append(results, buildSearchResult(&profiles[i], nil))
	}
	return results, nil
}

// searchByRadius computes the haversine distance to every artisan with
// coordinates, keeps those within the (inclusive) radius and sorts by
// ascending distance.
func (s *SearchServiceImpl) searchByRadius(lat, lng float64) ([]dto.ArtisanSearchResult, error) {
	profiles, err := s.artisanRepo.FindAllWithCoordinates()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	type scored struct {
		profile  *models.ArtisanProfile
		distance float64
	}

	var matches []scored
	for i := range profiles {
		p := &profiles[i]
		if !p.HasCoordinates() {
			continue
		}
		distance := algorithms.Haversine(lat, lng, *p.Latitude, *p.Longitude)
		if algorithms.WithinRadius(distance, algorithms.DefaultSearchRadiusKm) {
			matches = append(matches, scored{profile: p, distance: distance})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	results := make([]dto.ArtisanSearchResult, 0, len(matches))
	for _, m := range matches {
		rounded := algorithms.RoundKm(m.distance)
		results = append(results, buildSearchResult(m.profile, &rounded))
	}
	return results, nil
}

func buildSearchResult(profile *models.ArtisanProfile, distanceKm *float64) dto.ArtisanSearchResult {
	profilePic := profile.User.ProfilePic
	if profilePic == "" {
		profilePic = PlaceholderProfilePic
	}

	return dto.ArtisanSearchResult{
		ID:         profile.ID,
		Name:       profile.User.Name,
		Skills:     profile.GetSkills(),
		Location:   profile.Location,
		ProfilePic: profilePic,
		DistanceKm: distanceKm,
	}
}
