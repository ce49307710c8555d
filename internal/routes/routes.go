package routes

import (
	"artisanhub/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.FavoriteHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
	}
}
