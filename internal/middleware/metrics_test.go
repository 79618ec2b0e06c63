package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipes-api/backend/internal/metrics"
)

func TestMetricsUsesRouteTemplate(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/recipes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequestCounter("GET", "/recipes/:id", "200")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes/17", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes/18", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
