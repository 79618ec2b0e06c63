package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipes-api/backend/internal/database"
	"github.com/pageza/recipes-api/backend/internal/types"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	DB        string `json:"db"`
	Redis     string `json:"redis"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          *gorm.DB
	redis       *redis.Client
}

// NewHealthHandler reports on db and, when configured, redis. A nil redis
// client is reported as disabled.
func NewHealthHandler(serviceName, version string, db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		redis:       redisClient,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	dbStatus := "up"
	if h.db == nil || database.HealthCheck(pingCtx, h.db) != nil {
		dbStatus = "down"
	}

	redisStatus := "disabled"
	if h.redis != nil {
		redisStatus = "up"
		if err := h.redis.Ping(pingCtx).Err(); err != nil {
			redisStatus = "down"
		}
	}

	status, code := "healthy", http.StatusOK
	if dbStatus != "up" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(types.TimestampFormat),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Redis:     redisStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/api/health", h.HealthCheck)
}
