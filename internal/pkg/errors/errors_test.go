package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("error message includes code", func(t *testing.T) {
		err := NotFound("todo")
		assert.Equal(t, "NOT_FOUND: todo not found", err.Error())
	})

	t.Run("error message includes wrapped error", func(t *testing.T) {
		err := Internal("query failed").WithError(errors.New("connection reset"))
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("unwrap returns the underlying error", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Internal("query failed").WithError(cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestNotFoundID(t *testing.T) {
	err := NotFoundID("todo", 42)

	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, GetStatusCode(err))
	assert.Equal(t, "42", err.Details["id"])
}

func TestErrorClassification(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := NotFound("todo")
		assert.True(t, IsNotFound(err))
		assert.False(t, IsValidation(err))
		assert.False(t, IsInternal(err))
	})

	t.Run("validation", func(t *testing.T) {
		err := Validation("text is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsNotFound(err))
		assert.Equal(t, http.StatusBadRequest, GetStatusCode(err))
	})

	t.Run("internal", func(t *testing.T) {
		err := Internal("boom")
		assert.True(t, IsInternal(err))
		assert.Equal(t, http.StatusInternalServerError, GetStatusCode(err))
	})

	t.Run("classification survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("while deleting: %w", NotFoundID("todo", 7))
		assert.True(t, IsNotFound(err))
	})

	t.Run("plain errors are neither", func(t *testing.T) {
		err := errors.New("plain")
		assert.False(t, IsNotFound(err))
		assert.False(t, IsValidation(err))
		assert.False(t, IsAppError(err))
		assert.Equal(t, http.StatusInternalServerError, GetStatusCode(err))
	})
}
