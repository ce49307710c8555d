package database

import (
	"artisanhub/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.ArtisanProfile{},
		&models.Message{},
		&models.JobPost{},
		&models.JobApplication{},
		&models.Favorite{},
		&models.Review{},
		&models.Notification{},
	)
}
