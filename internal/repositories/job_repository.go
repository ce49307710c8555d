package repositories

import (
	"errors"

	"artisanhub/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
)

// JobCriteria filters the job listing.
type JobCriteria struct {
	Location string `form:"location"`
	Status   string `form:"status"`
	OwnerID  string `form:"owner_id"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type JobRepository interface {
	// Job operations
	Create(job *models.JobPost) error
	FindByID(id string) (*models.JobPost, error)
	FindAll(criteria JobCriteria) ([]models.JobPost, int64, error)
	Update(job *models.JobPost) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(jobID string) error

	// Application operations
	CreateApplication(application *models.JobApplication) error
	FindApplicationByID(id string) (*models.JobApplication, error)
	FindApplication(artisanID, jobID string) (*models.JobApplication, error)
	FindApplicationsByJob(jobID string) ([]models.JobApplication, error)
	FindApplicationsByArtisan(artisanID string) ([]models.JobApplication, error)
	UpdateApplicationStatus(applicationID string, status models.ApplicationStatus) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

// Job operations

func (r *JobRepositoryImpl) Create(job *models.JobPost) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.Preload("Owner").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll(criteria JobCriteria) ([]models.JobPost, int64, error) {
	query := r.db.Model(&models.JobPost{})

	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.OwnerID != "" {
		query = query.Where("owner_id = ?", criteria.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var jobs []models.JobPost
	err := query.Preload("Owner").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) Update(job *models.JobPost) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":       job.Title,
		"description": job.Description,
		"location":    job.Location,
		"budget":      job.Budget,
		"latitude":    job.Latitude,
		"longitude":   job.Longitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.JobPost{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	return r.db.Where("id = ?", jobID).Delete(&models.JobPost{}).Error
}

// Application operations

func (r *JobRepositoryImpl) CreateApplication(application *models.JobApplication) error {
	return r.db.Create(application).Error
}

func (r *JobRepositoryImpl) FindApplicationByID(id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *JobRepositoryImpl) FindApplication(artisanID, jobID string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.First(&application, "artisan_id = ? AND job_id = ?", artisanID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *JobRepositoryImpl) FindApplicationsByJob(jobID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.Preload("Artisan").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *JobRepositoryImpl) FindApplicationsByArtisan(artisanID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.Preload("Job").
		Where("artisan_id = ?", artisanID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *JobRepositoryImpl) UpdateApplicationStatus(applicationID string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).
		Where("id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
