package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_IsMatchesOnCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrEmailRequired.WithMessage("email missing"))

	assert.True(t, errors.Is(wrapped, ErrEmailRequired))
	assert.False(t, errors.Is(wrapped, ErrIDRequired))
	assert.False(t, errors.Is(errors.New("plain"), ErrEmailRequired))
}

func TestHTTPError_WithMessageCopies(t *testing.T) {
	copied := ErrUserNotFound.WithMessage("no such guest")

	assert.Equal(t, "no such guest", copied.Error())
	assert.Equal(t, "User not found", ErrUserNotFound.Message)
	assert.Equal(t, http.StatusNotFound, copied.Status)
	assert.Equal(t, CodeUserNotFound, copied.Code)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request default code", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found default code", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"email required", ErrEmailRequired, http.StatusBadRequest, CodeEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("name is required"))
	assert.Equal(t, "Validation failed: name is required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}
