package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	SearchHandler       *SearchHandler
	MessageHandler      *MessageHandler
	JobHandler          *JobHandler
	FavoriteHandler     *FavoriteHandler
	ReviewHandler       *ReviewHandler
	NotificationHandler *NotificationHandler
	UploadHandler       *UploadHandler
}
