package handlers

import (
	"net/http"

	"artisanhub/internal/middleware"
	"artisanhub/internal/models"
	"artisanhub/internal/services"
	"artisanhub/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/reviews")
	{
		public.GET("", h.GetReviews)
		public.GET("/artisans/:artisanId", h.GetArtisanReviews)
	}

	protected := r.Group("/reviews")
	protected.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCustomer))
	{
		protected.POST("", h.CreateReview)
	}
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviews()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) GetArtisanReviews(c *gin.Context) {
	reviews, average, err := h.reviewService.GetArtisanReviews(c.Param("artisanId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": average,
	})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
