package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placement_backend/database"
	"placement_backend/internal/cache"
	"placement_backend/internal/config"
	"placement_backend/internal/email"
	"placement_backend/internal/handlers"
	"placement_backend/internal/logger"
	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/routes"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"
	"placement_backend/internal/storage"
	"placement_backend/internal/validator"
	"placement_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run boots the portal: config, logger, database, seed, workers, router.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	logger.Info("database connected and migrated")

	if err := seedFirstTPO(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first TPO user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workersStart(ctx, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires storage, services, handlers and routes onto a gin
// engine. Tests call this with their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
			UseTLS:   cfg.Email.UseTLS,
		})
	} else {
		logger.Warn("email is not configured, notifications stay in-app only")
		emailProvider = email.NoopProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	resumeRepo := repositories.NewResumeRepository(gormDB)

	profileCache := cache.New[dto.ComposedProfileResponse](time.Duration(cfg.ProfileCacheTTL) * time.Second)

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, profileRepo, notificationService, profileCache)
	profileService := services.NewProfileService(userRepo, profileRepo, profileCache)
	educationService := services.NewEducationService(profileRepo, profileCache)
	jobService := services.NewJobService(jobRepo, profileRepo, notificationService)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, profileRepo, notificationService)
	matchingService := services.NewMatchingService(jobRepo, profileRepo)
	analyticsService := services.NewAnalyticsService(userRepo, jobRepo, applicationRepo)
	resumeService := services.NewResumeService(resumeRepo, storageInstance, services.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}, profileCache)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		EducationService:    educationService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		MatchingService:     matchingService,
		NotificationService: notificationService,
		AnalyticsService:    analyticsService,
		ResumeService:       resumeService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService, services.ProfileService),
		EducationHandler:    handlers.NewEducationHandler(baseHandler, services.EducationService),
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService, services.MatchingService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		CompanyHandler:      handlers.NewCompanyHandler(baseHandler, services.UserService, services.ProfileService, services.JobService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		ResumeHandler:       handlers.NewResumeHandler(baseHandler, services.ResumeService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func workersStart(ctx context.Context, gormDB *gorm.DB) {
	jobRepo := repositories.NewJobRepository(gormDB)
	workers.NewDeadlineWorker(jobRepo).Start(ctx)
}

// seedFirstTPO makes sure one TPO account exists. Without it nobody can
// verify postings or register companies.
func seedFirstTPO(db *gorm.DB, cfg *config.Config) error {
	tpoEmail := cfg.FirstTPOEmail
	tpoPassword := cfg.FirstTPOPassword

	if tpoEmail == "" || tpoPassword == "" {
		logger.Warn("FIRST_TPO_EMAIL or FIRST_TPO_PASSWORD is not set, skipping TPO seeding")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.User
	result := tx.Where("email = ?", tpoEmail).First(&existing)
	if result.Error == nil {
		logger.Info("TPO user already exists, skipping creation", "email", tpoEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for TPO user: %w", result.Error)
	}

	logger.Warn("no TPO user found, creating the first one", "email", tpoEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tpoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash TPO password: %w", err)
	}

	tpo := &models.User{
		Email:        tpoEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleTPO,
		Status:       models.UserStatusActive,
	}
	if err := tx.Create(tpo).Error; err != nil {
		return fmt.Errorf("create TPO user: %w", err)
	}

	return tx.Commit().Error
}
