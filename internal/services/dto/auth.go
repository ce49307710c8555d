package dto

import "artisanhub/internal/models"

type RegisterRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,strong-password"`
	PhoneNumber string          `json:"phone_number" validate:"required,max=15"`
	Location    string          `json:"location" validate:"required,max=100"`
	Role        models.UserRole `json:"role" validate:"required,is-user-role"`
	// Trade is the artisan's skill set, required when Role is artisan.
	Trade     string   `json:"trade"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,strong-password"`
}
