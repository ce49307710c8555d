package repositories

import (
	"errors"

	"artisanhub/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("favorite already exists")
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Delete(userID, artisanID string) error
	Exists(userID, artisanID string) (bool, error)
	FindByUser(userID string) ([]models.Favorite, error)
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Create(favorite *models.Favorite) error {
	err := r.db.Create(favorite).Error
	if err != nil {
		// The composite unique index catches a racing duplicate insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFavoriteExists
		}
		return err
	}
	return nil
}

func (r *FavoriteRepositoryImpl) Delete(userID, artisanID string) error {
	return r.db.
		Where("user_id = ? AND artisan_id = ?", userID, artisanID).
		Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepositoryImpl) Exists(userID, artisanID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND artisan_id = ?", userID, artisanID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) FindByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Artisan").Preload("Artisan.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
