package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipes-api/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecovery(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	router := gin.New()
	router.Use(RequestID(), Recovery(logger))
	router.GET("/boom", func(c *gin.Context) {
		panic("database exploded")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body types.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, []string{"Internal server error"}, body.Errors)
	assert.NotContains(t, rr.Body.String(), "database exploded")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "database exploded", hook.LastEntry().Data["panic"])
	assert.NotEmpty(t, hook.LastEntry().Data["request_id"])
}
