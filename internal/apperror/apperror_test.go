package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationJoinsMessages(t *testing.T) {
	err := Validation([]string{"title is required", "ingredients is required"})

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "Validation failed: title is required, ingredients is required", err.Error())
	assert.Equal(t, []string{"title is required", "ingredients is required"}, err.Details())
}

func TestStoreErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("Failed to fetch recipes", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to fetch recipes: connection refused", err.Error())
	assert.Equal(t, []string{"Failed to fetch recipes"}, err.Details())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("Recipe not found"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindInvalidInput))
	assert.Equal(t, KindStore, KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalidInput.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindStore.HTTPStatus())
}
