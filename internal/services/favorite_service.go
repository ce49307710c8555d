package services

import (
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

type FavoriteService interface {
	AddFavorite(userID, artisanID string) (*dto.FavoriteResult, error)
	RemoveFavorite(userID, artisanID string) error
	GetFavorites(userID string) ([]dto.FavoriteResponse, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	artisanRepo  repositories.ArtisanRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	artisanRepo repositories.ArtisanRepository,
) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		artisanRepo:  artisanRepo,
	}
}

// AddFavorite bookmarks an artisan. A duplicate bookmark is reported as
// informational, not as an error.
func (s *FavoriteServiceImpl) AddFavorite(userID, artisanID string) (*dto.FavoriteResult, error) {
	if _, err := s.artisanRepo.FindByID(artisanID); err != nil {
		if apperrors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, apperrors.NewNotFoundError("favorites", "Artisan not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.favoriteRepo.Exists(userID, artisanID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return &dto.FavoriteResult{
			Success: false,
			Message: "Artisan is already in your favorites",
		}, nil
	}

	favorite := &models.Favorite{
		UserID:    userID,
		ArtisanID: artisanID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if apperrors.Is(err, repositories.ErrFavoriteExists) {
			return &dto.FavoriteResult{
				Success: false,
				Message: "Artisan is already in your favorites",
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.FavoriteResult{
		Success: true,
		Message: "Artisan added to favorites",
	}, nil
}

// RemoveFavorite is idempotent. Removing a bookmark that does not exist
// succeeds quietly.
func (s *FavoriteServiceImpl) RemoveFavorite(userID, artisanID string) error {
	if err := s.favoriteRepo.Delete(userID, artisanID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) GetFavorites(userID string) ([]dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		f := &favorites[i]
		profilePic := f.Artisan.User.ProfilePic
		if profilePic == "" {
			profilePic = PlaceholderProfilePic
		}
		responses = append(responses, dto.FavoriteResponse{
			ArtisanID:  f.ArtisanID,
			Name:       f.Artisan.User.Name,
			Skills:     f.Artisan.GetSkills(),
			Location:   f.Artisan.Location,
			ProfilePic: profilePic,
			CreatedAt:  f.CreatedAt,
		})
	}
	return responses, nil
}
