package dto

import "time"

// FavoriteResult mirrors ApplyResult: a duplicate bookmark is reported as
// informational, not as an error.
type FavoriteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type FavoriteResponse struct {
	ArtisanID  string    `json:"artisan_id"`
	Name       string    `json:"name"`
	Skills     []string  `json:"skills"`
	Location   string    `json:"location"`
	ProfilePic string    `json:"profile_pic"`
	CreatedAt  time.Time `json:"created_at"`
}
