package services

import (
	"math"

	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

type JobService interface {
	CreateJob(ownerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(jobID string) (*dto.JobResponse, error)
	ListJobs(criteria repositories.JobCriteria) (*dto.PaginatedResponse, error)
	UpdateJob(userID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	UpdateJobStatus(userID, jobID string, status models.JobStatus) error
	DeleteJob(userID, jobID string) error

	Apply(artisanID, jobID string, req *dto.ApplyRequest) (*dto.ApplyResult, error)
	GetJobApplications(userID, jobID string) ([]dto.ApplicationResponse, error)
	GetMyApplications(artisanID string) ([]dto.ApplicationResponse, error)
	UpdateApplicationStatus(userID, applicationID string, status models.ApplicationStatus) error
}

type JobServiceImpl struct {
	jobRepo             repositories.JobRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) JobService {
	return &JobServiceImpl{
		jobRepo:             jobRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

func (s *JobServiceImpl) CreateJob(ownerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.JobPost{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.JobStatusOpen,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) GetJob(jobID string) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) ListJobs(criteria repositories.JobCriteria) (*dto.PaginatedResponse, error) {
	jobs, total, err := s.jobRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *buildJobResponse(&jobs[i]))
	}

	return &dto.PaginatedResponse{
		Data:       responses,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(criteria.PageSize))),
	}, nil
}

// UpdateJob applies a partial update. Only the owner may edit a posting.
func (s *JobServiceImpl) UpdateJob(userID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != userID {
		return nil, apperrors.NewForbiddenError("jobs", "Only the job owner can edit it")
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Budget != nil {
		job.Budget = *req.Budget
	}
	if req.Latitude != nil {
		job.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		job.Longitude = req.Longitude
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) UpdateJobStatus(userID, jobID string, status models.JobStatus) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if job.OwnerID != userID {
		return apperrors.NewForbiddenError("jobs", "Only the job owner can change its status")
	}
	if err := s.jobRepo.UpdateStatus(jobID, status); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) DeleteJob(userID, jobID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if job.OwnerID != userID {
		return apperrors.NewForbiddenError("jobs", "Only the job owner can delete it")
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Apply records an application unless a gatekeeping rule blocks it. Owner
// self-applications and duplicate applications are reported back as
// informational results, not errors.
func (s *JobServiceImpl) Apply(artisanID, jobID string, req *dto.ApplyRequest) (*dto.ApplyResult, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.OwnerID == artisanID {
		return &dto.ApplyResult{
			Success: false,
			Message: "You cannot apply to your own job",
		}, nil
	}

	if job.Status != models.JobStatusOpen {
		return &dto.ApplyResult{
			Success: false,
			Message: "This job is no longer accepting applications",
		}, nil
	}

	if _, err := s.jobRepo.FindApplication(artisanID, jobID); err == nil {
		return &dto.ApplyResult{
			Success: false,
			Message: "You have already applied to this job",
		}, nil
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.JobApplication{
		JobID:     jobID,
		ArtisanID: artisanID,
		Message:   req.Message,
		Status:    models.ApplicationStatusPending,
	}
	if err := s.jobRepo.CreateApplication(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyOwner(job, application)

	return &dto.ApplyResult{
		Success:     true,
		Message:     "Application submitted",
		Application: buildApplicationResponse(application),
	}, nil
}

// GetJobApplications lists the applications for a posting. Restricted to
// the posting's owner.
func (s *JobServiceImpl) GetJobApplications(userID, jobID string) ([]dto.ApplicationResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != userID {
		return nil, apperrors.NewForbiddenError("jobs", "Only the job owner can view applications")
	}

	applications, err := s.jobRepo.FindApplicationsByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

func (s *JobServiceImpl) GetMyApplications(artisanID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.jobRepo.FindApplicationsByArtisan(artisanID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

// UpdateApplicationStatus accepts or rejects an application on behalf of
// the job owner and notifies the applicant.
func (s *JobServiceImpl) UpdateApplicationStatus(userID, applicationID string, status models.ApplicationStatus) error {
	application, err := s.jobRepo.FindApplicationByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NewNotFoundError("jobs", "Application not found")
		}
		return apperrors.InternalError(err)
	}

	job, err := s.findJob(application.JobID)
	if err != nil {
		return err
	}
	if job.OwnerID != userID {
		return apperrors.NewForbiddenError("jobs", "Only the job owner can decide applications")
	}

	if err := s.jobRepo.UpdateApplicationStatus(applicationID, status); err != nil {
		return apperrors.InternalError(err)
	}

	s.notificationService.NotifyApplicationStatus(application.ArtisanID, job.Title, status)
	return nil
}

func (s *JobServiceImpl) findJob(jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("jobs", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) notifyOwner(job *models.JobPost, application *models.JobApplication) {
	artisan, err := s.userRepo.FindByID(application.ArtisanID)
	artisanName := "An artisan"
	if err == nil {
		artisanName = artisan.Name
	}
	s.notificationService.NotifyNewApplication(job.OwnerID, job.ID, application.ID, artisanName)
}

func buildJobResponse(job *models.JobPost) *dto.JobResponse {
	return &dto.JobResponse{
		ID:          job.ID,
		OwnerID:     job.OwnerID,
		OwnerName:   job.Owner.Name,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Budget:      job.Budget,
		Latitude:    job.Latitude,
		Longitude:   job.Longitude,
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
	}
}

func buildApplicationResponse(application *models.JobApplication) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		ArtisanID:   application.ArtisanID,
		ArtisanName: application.Artisan.Name,
		Message:     application.Message,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
	}
}

func buildApplicationResponses(applications []models.JobApplication) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, *buildApplicationResponse(&applications[i]))
	}
	return responses
}
