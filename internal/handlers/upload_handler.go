package handlers

import (
	"net/http"

	"artisanhub/internal/middleware"
	"artisanhub/internal/services"
	"artisanhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/profile-picture", h.UploadProfilePicture)
	}
}

func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file in form field 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.uploadService.UploadProfilePicture(
		c.Request.Context(), userID, fileHeader.Filename, fileHeader.Size, file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
