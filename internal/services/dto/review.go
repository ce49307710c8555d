package dto

import "time"

type CreateReviewRequest struct {
	ArtisanID string `json:"artisan_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer"`
	ArtisanID    string    `json:"artisan_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
