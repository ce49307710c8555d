package dto

import "artisanhub/internal/models"

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        models.UserRole `json:"role"`
	Location    string          `json:"location"`
	PhoneNumber string          `json:"phone_number"`
	ProfilePic  string          `json:"profile_pic,omitempty"`
	Artisan     *ArtisanInfo    `json:"artisan,omitempty"`
}

type ArtisanInfo struct {
	ID        string   `json:"id"`
	Skills    []string `json:"skills"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type UpdateProfileRequest struct {
	Name        string   `json:"name" validate:"omitempty,max=100"`
	Location    string   `json:"location" validate:"omitempty,max=100"`
	PhoneNumber string   `json:"phone_number" validate:"omitempty,max=15"`
	Skills      []string `json:"skills"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}
