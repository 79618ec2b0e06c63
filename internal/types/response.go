package types

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TimestampFormat is ISO-8601 with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Response is the envelope of every JSON response.
type Response struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Data      any      `json:"data,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// Success builds a success envelope.
func Success(message string, data any) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	}
}

// Failure builds an error envelope.
func Failure(message string, errs []string) Response {
	return Response{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: now(),
	}
}

// AbortWithFailure writes an error envelope and stops the handler chain.
func AbortWithFailure(c *gin.Context, status int, message string, errs ...string) {
	if len(errs) == 0 {
		errs = []string{message}
	}
	c.AbortWithStatusJSON(status, Failure(message, errs))
}

// NotFoundRoute answers requests that match no route.
func NotFoundRoute(c *gin.Context) {
	AbortWithFailure(c, http.StatusNotFound, "Route not found")
}

func now() string {
	return time.Now().UTC().Format(TimestampFormat)
}
