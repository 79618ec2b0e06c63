package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipes-api/backend/config"
		"github.com/pageza/recipes-api/backend/internal/database"
	"github.com/pageza/recipes-api/backend/internal/logging"
	"github.com/pageza/recipes-api/backend/internal/router"
	"github.com/pageza/recipes-api/backend/internal/server"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	gin.SetMode(cfg.Environment.GinMode())

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Close(db)

	applied, err := database.RunMigrations(context.Background(), db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}
	for _, name := range applied {
		logger.WithField("migration", name).Info("Applied migration")
	}

	// Continue without rate limiting if Redis is not available
	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.WithError(err).Warn("Failed to connect to Redis for rate limiting")
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv := server.New(cfg, router.SetupRouter(cfg, db, redisClient, logger), logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		logger.WithField("env", cfg.Environment).Info("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.WithError(err).Fatal("Server error")
		}
	case sig := <-quit:
		logger.Infof("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server shutdown error")
		return
	}
	logger.Info("Server stopped")
}
