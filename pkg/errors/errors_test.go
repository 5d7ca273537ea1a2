package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("user", nil), http.StatusNotFound},
		{"bad request", BadRequest("invalid input", nil), http.StatusBadRequest},
		{"conflict", Conflict("already exists", nil), http.StatusConflict},
		{"unauthorized", Unauthorized(nil), http.StatusUnauthorized},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "user not found", NotFound("user", nil).Error())
}

func TestErrorIncludesCause(t *testing.T) {
	cause := errors.New("row missing")
	err := NotFound("user", cause)

	assert.Contains(t, err.Error(), "row missing")
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("already exists", nil)
	wrapped := fmt.Errorf("saving record: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrConflict, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
