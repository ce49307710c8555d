package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"artisanhub/internal/auth"
	"artisanhub/internal/config"
	"artisanhub/internal/email"
	"artisanhub/internal/logger"
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	artisanRepo   repositories.ArtisanRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	artisanRepo repositories.ArtisanRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		artisanRepo:   artisanRepo,
		emailProvider: emailProvider,
	}
}

// Register creates a user and, for the artisan role, the artisan profile
// in the same flow. The registered user is logged in immediately, as the
// registration endpoint returns tokens.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if req.Role == models.UserRoleArtisan && req.Trade == "" {
		return nil, apperrors.NewBadRequestError("Trade is required for artisans")
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Location:     req.Location,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Role == models.UserRoleArtisan {
		profile := &models.ArtisanProfile{
			UserID:    user.ID,
			Location:  req.Location,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}
		if err := profile.SetSkills([]string{req.Trade}); err != nil {
			return nil, apperrors.InternalError(err)
		}
		if err := s.artisanRepo.Create(profile); err != nil {
			// Registration is atomic from the client's view: no user
			// without its artisan profile.
			if delErr := s.userRepo.Delete(user.ID); delErr != nil {
				logger.Error("failed to roll back user after profile failure", "user_id", user.ID, "error", delErr)
			}
			return nil, apperrors.InternalError(err)
		}
		user.ArtisanProfile = profile
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate the refresh token on use.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset stores a reset token and mails it. The response is
// identical whether or not the email exists, so the endpoint cannot be
// used to probe for accounts.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token := generateRandomToken()
	expiresAt := time.Now().Add(time.Hour)
	if err := s.userRepo.SetResetToken(user.ID, token, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	msg := email.PasswordResetMessage(user.Email, user.Name, token)
	if err := s.emailProvider.Send(msg); err != nil {
		logger.Error("failed to send reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdatePassword(user.ID, hashed); err != nil {
		return apperrors.InternalError(err)
	}

	// Password change invalidates every open session.
	if err := s.userRepo.DeleteUserRefreshTokens(user.ID); err != nil {
		logger.Error("failed to revoke refresh tokens", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     generateRandomToken(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}
	if err := s.userRepo.CreateRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         BuildUserResponse(user),
	}, nil
}

func generateRandomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the process cannot do anything
		// security-sensitive.
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
