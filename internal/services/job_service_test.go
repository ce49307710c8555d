package services

import (
	"testing"

	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	userRepo         *fakeUserRepo
	jobRepo          *fakeJobRepo
	notificationRepo *fakeNotificationRepo
	service          JobService
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	notificationRepo := newFakeNotificationRepo()

	return &jobFixture{
		userRepo:         userRepo,
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		service:          NewJobService(jobRepo, userRepo, NewNotificationService(notificationRepo)),
	}
}

func (f *jobFixture) addUser(t *testing.T, name, emailAddr string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: emailAddr, Role: role}
	require.NoError(t, f.userRepo.Create(user))
	return user
}

func (f *jobFixture) addJob(t *testing.T, ownerID, title string) *dto.JobResponse {
	t.Helper()
	job, err := f.service.CreateJob(ownerID, &dto.CreateJobRequest{
		Title:       title,
		Description: "fix the roof",
		Location:    "Lagos",
		Budget:      250,
	})
	require.NoError(t, err)
	return job
}

func TestJobServiceApplyGatekeeping(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addUser(t, "Owner", "owner@test.com", models.UserRoleCustomer)
	artisan := f.addUser(t, "Worker", "worker@test.com", models.UserRoleArtisan)
	job := f.addJob(t, owner.ID, "Roof repair")

	t.Run("owner cannot apply to their own job", func(t *testing.T) {
		result, err := f.service.Apply(owner.ID, job.ID, &dto.ApplyRequest{Message: "me"})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Nil(t, result.Application)

		// Nothing was persisted.
		apps, err := f.jobRepo.FindApplicationsByJob(job.ID)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("first application succeeds and notifies the owner", func(t *testing.T) {
		result, err := f.service.Apply(artisan.ID, job.ID, &dto.ApplyRequest{Message: "I can do this"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		require.NotNil(t, result.Application)
		assert.Equal(t, models.ApplicationStatusPending, result.Application.Status)

		count, err := f.notificationRepo.GetUnreadCount(owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("duplicate application is reported, not persisted", func(t *testing.T) {
		result, err := f.service.Apply(artisan.ID, job.ID, &dto.ApplyRequest{Message: "again"})
		require.NoError(t, err)
		assert.False(t, result.Success)

		apps, err := f.jobRepo.FindApplicationsByJob(job.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("closed job rejects applications", func(t *testing.T) {
		other := f.addUser(t, "Other", "other@test.com", models.UserRoleArtisan)
		require.NoError(t, f.service.UpdateJobStatus(owner.ID, job.ID, models.JobStatusClosed))

		result, err := f.service.Apply(other.ID, job.ID, &dto.ApplyRequest{Message: "late"})
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		_, err := f.service.Apply(artisan.ID, "missing", &dto.ApplyRequest{Message: "?"})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, 404, appErr.HTTPCode)
	})
}

func TestJobServiceOwnership(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addUser(t, "Owner", "owner@test.com", models.UserRoleCustomer)
	stranger := f.addUser(t, "Stranger", "stranger@test.com", models.UserRoleCustomer)
	job := f.addJob(t, owner.ID, "Paint the fence")

	t.Run("only the owner can edit", func(t *testing.T) {
		_, err := f.service.UpdateJob(stranger.ID, job.ID, &dto.UpdateJobRequest{Title: "Hijacked"})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, 403, appErr.HTTPCode)
	})

	t.Run("only the owner can delete", func(t *testing.T) {
		err := f.service.DeleteJob(stranger.ID, job.ID)
		require.Error(t, err)
	})

	t.Run("owner edit is partial", func(t *testing.T) {
		updated, err := f.service.UpdateJob(owner.ID, job.ID, &dto.UpdateJobRequest{Title: "Paint everything"})
		require.NoError(t, err)
		assert.Equal(t, "Paint everything", updated.Title)
		assert.Equal(t, "fix the roof", updated.Description)
	})

	t.Run("only the owner can view applications", func(t *testing.T) {
		_, err := f.service.GetJobApplications(stranger.ID, job.ID)
		require.Error(t, err)

		apps, err := f.service.GetJobApplications(owner.ID, job.ID)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}

func TestJobServiceApplicationDecision(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addUser(t, "Owner", "owner@test.com", models.UserRoleCustomer)
	artisan := f.addUser(t, "Worker", "worker@test.com", models.UserRoleArtisan)
	job := f.addJob(t, owner.ID, "Tile the bathroom")

	result, err := f.service.Apply(artisan.ID, job.ID, &dto.ApplyRequest{Message: "pick me"})
	require.NoError(t, err)
	require.True(t, result.Success)

	t.Run("stranger cannot decide", func(t *testing.T) {
		stranger := f.addUser(t, "Stranger", "stranger@test.com", models.UserRoleCustomer)
		err := f.service.UpdateApplicationStatus(stranger.ID, result.Application.ID, models.ApplicationStatusAccepted)
		require.Error(t, err)
	})

	t.Run("owner decision updates status and notifies the applicant", func(t *testing.T) {
		err := f.service.UpdateApplicationStatus(owner.ID, result.Application.ID, models.ApplicationStatusAccepted)
		require.NoError(t, err)

		application, err := f.jobRepo.FindApplicationByID(result.Application.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusAccepted, application.Status)

		count, err := f.notificationRepo.GetUnreadCount(artisan.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestJobServiceListing(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addUser(t, "Owner", "owner@test.com", models.UserRoleCustomer)
	f.addJob(t, owner.ID, "One")
	f.addJob(t, owner.ID, "Two")

	resp, err := f.service.ListJobs(repositories.JobCriteria{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)

	filtered, err := f.service.ListJobs(repositories.JobCriteria{OwnerID: "nobody", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(0), filtered.Total)
}
