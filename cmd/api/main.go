package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-scheduler/pkg/validator"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/handler"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/external/calendar"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/external/oauth"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/scheduling"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
	"github.com/johnquangdev/meeting-scheduler/pkg/idgen"
	"github.com/johnquangdev/meeting-scheduler/pkg/jwt"
)

// @title           Meeting Scheduler API
// @version         1.0
// @description     API for scheduling meetings: participant availability resolution, slot scoring, and ranked recommendations

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	meetingRepo := repository.NewMeetingRequestRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)

	// Availability patterns are read on every scheduling call; front the store
	// with a redis read-through cache.
	var patternRepo repositories.AvailabilityPatternRepository = repository.NewCachedAvailabilityPatternRepository(
		repository.NewAvailabilityPatternRepository(db),
		redisClient,
		cfg.Scheduler.PatternCacheTTL,
	)

	// Initialize OAuth provider
	log.Println("🔐 Initializing OAuth provider...")
	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		cfg.OAuth.Google.RedirectURL,
	)

	// Initialize state manager with Redis for CSRF protection
	stateManager := oauth.NewStateManager(cache.NewRedisStore(redisClient, "scheduler:"))

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize OAuth service
	log.Println("✨ Initializing OAuth service...")
	oauthService := auth.NewOAuthService(
		userRepo,
		sessionRepo,
		googleProvider,
		stateManager,
		jwtManager,
	)

	// Initialize calendar availability provider
	var availabilityProvider scheduling.AvailabilityProvider
	switch cfg.Scheduler.CalendarProvider {
	case "google":
		log.Println("📅 Calendar availability provider: google")
		availabilityProvider = calendar.NewGoogleProvider(googleProvider.Config())
	default:
		log.Println("📅 Calendar availability provider: none (all registered users treated as free)")
		availabilityProvider = calendar.NewNoopProvider()
	}

	// Initialize scheduling service
	log.Println("🗓️  Initializing scheduling service...")
	resolver := scheduling.NewResolver(
		userRepo,
		patternRepo,
		availabilityProvider,
		scheduling.PolicyFromConfig(cfg.Scheduler),
	)
	schedulingService := scheduling.NewService(
		meetingRepo,
		slotRepo,
		resolver,
		idgen.New(),
		cfg.Scheduler,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(oauthService)
	schedulingHandler := handler.NewScheduling(schedulingService)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authHandler, schedulingHandler, oauthService)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
