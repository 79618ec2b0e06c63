package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("recipe_id", 3).Info("recipe created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recipe created", entry["msg"])
	assert.Equal(t, float64(3), entry["recipe_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithOutputFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty", "text")
	assert.Error(t, err)
}
