package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authconfig "ecoshopper-backend/internal/auth/config"
	"ecoshopper-backend/internal/di"
	scanconfig "ecoshopper-backend/internal/scan/config"
	"ecoshopper-backend/internal/shared/database"
	"ecoshopper-backend/internal/shared/logger"
	"ecoshopper-backend/internal/shared/middleware"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"localhost"`
	Port string `env:"SERVER_PORT" envDefault:"3000"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load server configuration
	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewLogger()
	appLogger.Info("Application configuration loaded successfully")

	// Load scan configuration
	scanCfg, err := scanconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load scan configuration: %v", err)
	}

	// Load auth configuration
	authCfg, err := authconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth configuration: %v", err)
	}

	// The store handle connects lazily on first use; nothing dials here.
	store := database.NewStore(scanCfg.MongoDBURI, scanCfg.DatabaseName, appLogger)

	// Initialize Dependency Injection Container
	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	if err := container.InitializeScan(store, scanCfg); err != nil {
		log.Fatalf("Failed to initialize scan module: %v", err)
	}
	appLogger.Info("Scan module initialized successfully")

	if err := container.InitializeAuth(authCfg); err != nil {
		log.Fatalf("Failed to initialize auth module: %v", err)
	}
	appLogger.Info("Auth module initialized successfully")

	// Setup HTTP server (Fiber) with middleware
	app := fiber.New(fiber.Config{
		AppName:      "EcoShopper API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		},
	})

	// Add middleware. CORS stays fully permissive with credentials for the
	// demo; a production deployment must restrict origins.
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(middleware.RequestContext())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Add health check endpoint with container health status
	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "UNHEALTHY",
				"error":   err.Error(),
				"message": "One or more services are unhealthy",
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"message":   "EcoShopper API is running",
			"timestamp": time.Now().UTC(),
			"modules": fiber.Map{
				"scan": "initialized",
				"auth": "initialized",
			},
		})
	})

	// Register module routes
	if scanModule := container.GetScanModule(); scanModule != nil {
		scanModule.RegisterRoutes(app)
		appLogger.Info("Scan routes registered")
	}
	if authModule := container.GetAuthModule(); authModule != nil {
		authModule.RegisterRoutes(app)
		appLogger.Info("Auth routes registered")
	}

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("All modules initialized. Starting HTTP server on %s", serverAddr)

	// Start server in a goroutine for graceful shutdown
	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Errorf("Server failed to start: %v", err)
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		// Shutdown the server with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}
}
