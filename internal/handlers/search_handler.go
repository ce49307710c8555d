package handlers

import (
	"net/http"

	"artisanhub/internal/services"
	"artisanhub/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.GET("/artisans", h.SearchArtisans)
	}
}

func (h *SearchHandler) SearchArtisans(c *gin.Context) {
	var req dto.SearchArtisansRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	results, err := h.searchService.SearchArtisans(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
