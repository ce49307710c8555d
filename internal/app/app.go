package app

import (
	"fmt"
	"time"

	"artisanhub/internal/auth"
	"artisanhub/internal/config"
	"artisanhub/internal/database"
	"artisanhub/internal/email"
	"artisanhub/internal/handlers"
	"artisanhub/internal/logger"
	"artisanhub/internal/middleware"
	"artisanhub/internal/repositories"
	"artisanhub/internal/routes"
	"artisanhub/internal/services"
	"artisanhub/internal/storage"
	"artisanhub/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Upload.Dir,
		BaseURL:  cfg.Upload.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, store)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	// Uploaded files are served directly off disk.
	ginRouter.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, store storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP is not configured, outgoing email is logged only")
		emailProvider = &email.NoopProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	artisanRepo := repositories.NewArtisanRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	favoriteRepo := repositories.NewFavoriteRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, artisanRepo, emailProvider),
		UserService:         services.NewUserService(userRepo, artisanRepo),
		SearchService:       services.NewSearchService(artisanRepo),
		MessageService:      services.NewMessageService(messageRepo, userRepo, notificationService),
		JobService:          services.NewJobService(jobRepo, userRepo, notificationService),
		FavoriteService:     services.NewFavoriteService(favoriteRepo, artisanRepo),
		ReviewService:       services.NewReviewService(reviewRepo, artisanRepo, userRepo),
		NotificationService: notificationService,
		UploadService:       services.NewUploadService(store, userRepo, cfg.Upload),
	}
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())
	accessTokenTTL := cfg.JWT.TTL * 60

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, sc.AuthService, accessTokenTTL),
		UserHandler:         handlers.NewUserHandler(base, sc.UserService),
		SearchHandler:       handlers.NewSearchHandler(base, sc.SearchService),
		MessageHandler:      handlers.NewMessageHandler(base, sc.MessageService),
		JobHandler:          handlers.NewJobHandler(base, sc.JobService),
		FavoriteHandler:     handlers.NewFavoriteHandler(base, sc.FavoriteService),
		ReviewHandler:       handlers.NewReviewHandler(base, sc.ReviewService),
		NotificationHandler: handlers.NewNotificationHandler(base, sc.NotificationService),
		UploadHandler:       handlers.NewUploadHandler(base, sc.UploadService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.RequestLogger())
	ginRouter.Use(gin.Recovery())

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return ginRouter
}
