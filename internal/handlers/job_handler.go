package handlers

import (
	"net/http"

	"artisanhub/internal/middleware"
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services"
	"artisanhub/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/:jobId", h.GetJob)
	}

	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("", h.CreateJob)
		jobs.PUT("/:jobId", h.UpdateJob)
		jobs.PATCH("/:jobId/status", h.UpdateJobStatus)
		jobs.DELETE("/:jobId", h.DeleteJob)
		jobs.GET("/:jobId/applications", h.GetJobApplications)
	}

	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		// GET and PATCH live in separate method trees, so the static
		// "my" segment does not clash with the wildcard.
		applications.GET("/my", h.GetMyApplications)
		applications.PATCH("/:applicationId", h.UpdateApplicationStatus)
	}

	apply := r.Group("/jobs")
	apply.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleArtisan))
	{
		apply.POST("/:jobId/apply", h.Apply)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var criteria repositories.JobCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	jobs, err := h.jobService.ListJobs(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req struct {
		Status models.JobStatus `json:"status" validate:"required,oneof=open closed"`
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateJobStatus(userID, c.Param("jobId"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job status updated"})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.jobService.Apply(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// A gatekeeping rejection is informational, not an error status.
	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *JobHandler) GetJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.jobService.GetJobApplications(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *JobHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.jobService.GetMyApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateApplicationStatus(userID, c.Param("applicationId"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}
