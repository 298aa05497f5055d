package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"mediamate-backend/internal/config"
	"mediamate-backend/internal/database"
	"mediamate-backend/internal/handlers"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/routes"
	"mediamate-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	// Repositories
	contentRepo := repository.NewContentRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	userRepo := repository.NewUserRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	searchService := services.NewSearchService(searchRepo, log)
	catalogService := services.NewCatalogService(contentRepo, reviewRepo, favoriteRepo, genreRepo, log)
	reviewService := services.NewReviewService(reviewRepo, log)
	authService := services.NewAuthService(userRepo, log)
	communityService := services.NewCommunityService(communityRepo, favoriteRepo, log)
	requestService := services.NewRequestService(requestRepo, contentRepo, genreRepo, log)
	favoriteService := services.NewFavoriteService(favoriteRepo, log)
	mailService := services.NewMailService(cfg.SMTP, log)

	storageService, err := services.NewStorageService(&cfg.MinIO, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage service: %v", err)
	}

	// Session store
	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		Expiration:     cfg.Session.Expiration,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	// Handlers
	h := routes.Handlers{
		Catalog:   handlers.NewCatalogHandler(catalogService, reviewService, log),
		Search:    handlers.NewSearchHandler(searchService, log),
		Auth:      handlers.NewAuthHandler(authService, store, log),
		Community: handlers.NewCommunityHandler(communityService, log),
		Favorite:  handlers.NewFavoriteHandler(favoriteService, log),
		Request:   handlers.NewRequestHandler(requestService, log),
		Contact:   handlers.NewContactHandler(mailService, log),
		Upload:    handlers.NewUploadHandler(storageService, log),
	}

	app := fiber.New(fiber.Config{
		AppName:               "MediaMate Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Setup API routes
	routes.Setup(app, store, h)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("MediaMate Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware; credentials stay on for the session cookie.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     getEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "mediamate-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
