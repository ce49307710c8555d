package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	SearchService       SearchService
	MessageService      MessageService
	JobService          JobService
	FavoriteService     FavoriteService
	ReviewService       ReviewService
	NotificationService NotificationService
	UploadService       UploadService
}
