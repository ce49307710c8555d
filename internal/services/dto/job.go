package dto

import (
	"time"

	"artisanhub/internal/models"
)

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,max=150"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required,max=100"`
	Budget      float64  `json:"budget" validate:"omitempty,min=0"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type UpdateJobRequest struct {
	Title       string   `json:"title" validate:"omitempty,max=150"`
	Description string   `json:"description"`
	Location    string   `json:"location" validate:"omitempty,max=100"`
	Budget      *float64 `json:"budget" validate:"omitempty,min=0"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type JobResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	OwnerName   string           `json:"owner_name,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Budget      float64          `json:"budget"`
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
	Status      models.JobStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ApplyRequest struct {
	Message string `json:"message" validate:"required"`
}

// ApplyResult distinguishes a persisted application from a gatekeeping
// rejection, which is informational rather than an error.
type ApplyResult struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message,omitempty"`
	Application *ApplicationResponse `json:"application,omitempty"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	ArtisanID   string                   `json:"artisan_id"`
	ArtisanName string                   `json:"artisan_name,omitempty"`
	Message     string                   `json:"message"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}
