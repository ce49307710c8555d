package repositories

import (
	"errors"

	"artisanhub/internal/models"

	"gorm.io/gorm"
)

var ErrArtisanNotFound = errors.New("artisan profile not found")

type ArtisanRepository interface {
	Create(profile *models.ArtisanProfile) error
	FindByID(id string) (*models.ArtisanProfile, error)
	FindByUserID(userID string) (*models.ArtisanProfile, error)
	Update(profile *models.ArtisanProfile) error

	// SearchByLocation matches the location field with a case-insensitive
	// substring (ILIKE).
	SearchByLocation(query string) ([]models.ArtisanProfile, error)
	// FindAllWithCoordinates returns every profile with both latitude and
	// longitude populated, for radius search.
	FindAllWithCoordinates() ([]models.ArtisanProfile, error)
}

type ArtisanRepositoryImpl struct {
	db *gorm.DB
}

func NewArtisanRepository(db *gorm.DB) ArtisanRepository {
	return &ArtisanRepositoryImpl{db: db}
}

func (r *ArtisanRepositoryImpl) Create(profile *models.ArtisanProfile) error {
	return r.db.Create(profile).Error
}

func (r *ArtisanRepositoryImpl) FindByID(id string) (*models.ArtisanProfile, error) {
	var profile models.ArtisanProfile
	err := r.db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtisanNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ArtisanRepositoryImpl) FindByUserID(userID string) (*models.ArtisanProfile, error) {
	var profile models.ArtisanProfile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtisanNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ArtisanRepositoryImpl) Update(profile *models.ArtisanProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"skills":    profile.Skills,
		"location":  profile.Location,
		"latitude":  profile.Latitude,
		"longitude": profile.Longitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtisanNotFound
	}
	return nil
}

func (r *ArtisanRepositoryImpl) SearchByLocation(query string) ([]models.ArtisanProfile, error) {
	var profiles []models.ArtisanProfile
	err := r.db.Preload("User").
		Where("location ILIKE ?", "%"+query+"%").
		Find(&profiles).Error
	return profiles, err
}

func (r *ArtisanRepositoryImpl) FindAllWithCoordinates() ([]models.ArtisanProfile, error) {
	var profiles []models.ArtisanProfile
	err := r.db.Preload("User").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&profiles).Error
	return profiles, err
}
