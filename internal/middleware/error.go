package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/recipes-api/backend/internal/types"
)

// Recovery turns a panic in a handler into a 500 envelope. The panic value
// is logged and never sent to the client.
func Recovery(logger logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Unhandled panic")

		types.AbortWithFailure(c, http.StatusInternalServerError, "Internal server error")
	})
}
