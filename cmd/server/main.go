package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	_ "github.com/skillstream/backend/docs"
	"github.com/skillstream/backend/internal/audit"
	authMiddleware "github.com/skillstream/backend/internal/auth/middleware"
	authService "github.com/skillstream/backend/internal/auth/service"
	"github.com/skillstream/backend/internal/config"
	"github.com/skillstream/backend/internal/handlers"
	"github.com/skillstream/backend/internal/logger"
	loggerMiddleware "github.com/skillstream/backend/internal/logger/middleware"
	"github.com/skillstream/backend/internal/middlewares"
	"github.com/skillstream/backend/internal/playback"
	"github.com/skillstream/backend/internal/ratelimit"
	"github.com/skillstream/backend/internal/repositories"
	"github.com/skillstream/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title SkillStream API
// @version 1.0
// @description Backend for the SkillStream e-learning platform: catalog, enrollment, watch progress and signed playback URLs.

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting SkillStream backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis (rate limiter backend)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := authService.NewTokenGenerator(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	userTokenRepo := repositories.NewUserTokenRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Initialize playback collaborators
	limiter := ratelimit.NewLimiter(redisClient, cfg.RateLimit.TokenRequestsPerWindow, cfg.RateLimit.Window)
	signer := playback.NewSigner(cfg.Playback.SigningSecret, cfg.Playback.MediaBaseURL, cfg.Playback.TokenTTL)
	auditLog := audit.NewLogger(logger.Logger)

	// Initialize services
	authSvc := services.NewAuthService(userRepo, userTokenRepo, tokenGenerator, logger.Logger)
	playbackSvc := services.NewPlaybackService(userRepo, lessonRepo, mediaRepo, enrollmentRepo, limiter, signer, auditLog, logger.Logger)
	catalogSvc := services.NewCatalogService(courseRepo, lessonRepo, mediaRepo, enrollmentRepo)
	enrollmentSvc := services.NewEnrollmentService(enrollmentRepo, courseRepo, logger.Logger)
	progressSvc := services.NewProgressService(progressRepo, lessonRepo, enrollmentRepo)
	testimonialSvc := services.NewTestimonialService(testimonialRepo)
	leadSvc := services.NewLeadService(leadRepo, logger.Logger)
	mediaSvc := services.NewMediaService(mediaRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, logger.Logger)
	playbackHandler := handlers.NewPlaybackHandler(playbackSvc, logger.Logger)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, logger.Logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentSvc, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressSvc, logger.Logger)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialSvc, logger.Logger)
	leadHandler := handlers.NewLeadHandler(leadSvc, logger.Logger)
	mediaAdminHandler := handlers.NewMediaAdminHandler(mediaSvc, logger.Logger)
	tokenCleaningHandler := handlers.NewTokenCleaningHandler(userTokenRepo, logger.Logger, cfg.JWT.RefreshTokenExpiry)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB, JSON only

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (catalog personalizes when a valid token is present)
		authHandler.RegisterRoutes(r)
		leadHandler.RegisterRoutes(r)
		testimonialHandler.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.OptionalAuthMiddleware(tokenGenerator))
			catalogHandler.RegisterRoutes(r)
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.AuthMiddleware(tokenGenerator))
			playbackHandler.RegisterRoutes(r)
			enrollmentHandler.RegisterRoutes(r)
			progressHandler.RegisterRoutes(r)
		})

		// Service-to-service routes (packaging pipeline, content tooling)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.APIKeyMiddleware(cfg.APIKey))
			mediaAdminHandler.RegisterRoutes(r)
			testimonialHandler.RegisterAdminRoutes(r)
			tokenCleaningHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
