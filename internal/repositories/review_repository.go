package repositories

import (
	"errors"

	"artisanhub/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(review *models.Review) error
	FindAll() ([]models.Review, error)
	FindByArtisan(artisanID string) ([]models.Review, error)
	ExistsByCustomerAndArtisan(customerID, artisanID string) (bool, error)
	AverageRating(artisanID string) (float64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindAll() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Customer").Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByArtisan(artisanID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Customer").
		Where("artisan_id = ?", artisanID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ExistsByCustomerAndArtisan(customerID, artisanID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("customer_id = ? AND artisan_id = ?", customerID, artisanID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) AverageRating(artisanID string) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).
		Select("AVG(rating)").
		Where("artisan_id = ?", artisanID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
