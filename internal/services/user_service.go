package services

import (
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	artisanRepo repositories.ArtisanRepository
}

func NewUserService(userRepo repositories.UserRepository, artisanRepo repositories.ArtisanRepository) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		artisanRepo: artisanRepo,
	}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("users", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return BuildUserResponse(user), nil
}

// UpdateProfile applies partial updates. For artisans the location and
// coordinates propagate to the artisan profile so search stays in sync.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("users", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if user.IsArtisan() {
		if err := s.syncArtisanProfile(user, req); err != nil {
			return nil, err
		}
	}

	updated, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return BuildUserResponse(updated), nil
}

func (s *UserServiceImpl) syncArtisanProfile(user *models.User, req *dto.UpdateProfileRequest) error {
	profile, err := s.artisanRepo.FindByUserID(user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArtisanNotFound) {
			return apperrors.NewNotFoundError("artisans", "Artisan profile not found")
		}
		return apperrors.InternalError(err)
	}

	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}
	if req.Skills != nil {
		if err := profile.SetSkills(req.Skills); err != nil {
			return apperrors.InternalError(err)
		}
	}

	if err := s.artisanRepo.Update(profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// BuildUserResponse converts a user record into its API shape.
func BuildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		Location:    user.Location,
		PhoneNumber: user.PhoneNumber,
		ProfilePic:  user.ProfilePic,
	}

	if user.ArtisanProfile != nil {
		resp.Artisan = &dto.ArtisanInfo{
			ID:        user.ArtisanProfile.ID,
			Skills:    user.ArtisanProfile.GetSkills(),
			Location:  user.ArtisanProfile.Location,
			Latitude:  user.ArtisanProfile.Latitude,
			Longitude: user.ArtisanProfile.Longitude,
		}
	}

	return resp
}
