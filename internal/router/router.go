package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/recipes-api/backend/config"
	"github.com/pageza/recipes-api/backend/internal/api"
	"github.com/pageza/recipes-api/backend/internal/middleware"
	"github.com/pageza/recipes-api/backend/internal/types"
)

// SetupRouter configures the middleware stack and the application routes.
// redisClient may be nil, in which case writes are not rate limited.
func SetupRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)
	router.NoRoute(types.NotFoundRoute)

	api.RegisterRoutes(router, cfg, db, redisClient, logger)
	return router
}
