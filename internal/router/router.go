package router

import (
	"log"

	"github.com/daheemang/challenge-platform/backend/internal/handlers"
	"github.com/daheemang/challenge-platform/backend/internal/middleware"
	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	// AutoMigrate PostgreSQL models
	err := db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Attend{},
		&models.AttendLike{},
		&models.Feedback{},
		&models.Notice{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	challengeRepo := repositories.NewPostgresChallengeRepository(db)
	attendRepo := repositories.NewPostgresAttendRepository(db)
	attendLikeRepo := repositories.NewPostgresAttendLikeRepository(db)
	feedbackRepo := repositories.NewPostgresFeedbackRepository(db)
	noticeRepo := repositories.NewPostgresNoticeRepository(db)

	// --- Initialize Services ---
	noticeService := services.NewNoticeService(noticeRepo)
	challengeService := services.NewChallengeService(challengeRepo, noticeService)
	moderationService := services.NewModerationService(challengeRepo, attendRepo, noticeService)
	attendService := services.NewAttendService(attendRepo, challengeRepo, attendLikeRepo, noticeService)
	feedbackService := services.NewFeedbackService(feedbackRepo, attendRepo, challengeRepo, noticeService)
	userService := services.NewUserService(userRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Challenge routes
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	challengeHandler.RegisterChallengeRoutes(api)
	log.Println("Challenge routes configured.")

	// Attend routes
	attendHandler := handlers.NewAttendHandler(attendService)
	attendHandler.RegisterAttendRoutes(api)
	log.Println("Attend routes configured.")

	// Feedback routes
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	feedbackHandler.RegisterFeedbackRoutes(api)
	log.Println("Feedback routes configured.")

	// Notice routes
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	noticeHandler.RegisterNoticeRoutes(api)
	log.Println("Notice routes configured.")

	// --- Admin routes (require JWT + admin role) ---
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
	adminHandler := handlers.NewAdminHandler(moderationService, challengeService, userService)
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
