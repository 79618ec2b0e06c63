package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/recipes-api/backend/config"
	"github.com/pageza/recipes-api/backend/internal/metrics"
	"github.com/pageza/recipes-api/backend/internal/middleware"
	"github.com/pageza/recipes-api/backend/internal/repository"
	"github.com/pageza/recipes-api/backend/internal/service"
)

const serviceName = "recipes-api"

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger logrus.FieldLogger) {
	// Health check and metrics endpoints
	NewHealthHandler(serviceName, cfg.Version, db, redisClient).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	var write []gin.HandlerFunc
	if redisClient != nil && cfg.RateLimitEnabled {
		limiter := middleware.NewWriteRateLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitLimit, logger)
		write = append(write, limiter.RateLimitMiddleware())
	} else {
		logger.Info("Write rate limiting disabled")
	}

	recipeService := service.NewRecipeService(repository.NewRecipeRepository(db), logger)
	recipeHandler := NewRecipeHandler(recipeService)

	recipeHandler.RegisterRoutes(router.Group("/api/v1"), write...)
	// un-prefixed aliases
	recipeHandler.RegisterRoutes(router, write...)
}
