package handlers

import (
	"net/http"

	"artisanhub/internal/middleware"
	"artisanhub/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup) {
	favorites := r.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:artisanId", h.AddFavorite)
		favorites.DELETE("/:artisanId", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.GetFavorites(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.favoriteService.AddFavorite(userID, c.Param("artisanId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(userID, c.Param("artisanId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
