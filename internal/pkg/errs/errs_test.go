package errs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError_KnownCode(t *testing.T) {
	err := NewError(ErrInvalidCredentials)

	assert.Equal(t, ErrInvalidCredentials, err.Code)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.NotEmpty(t, err.Message)
}

func TestNewError_DefaultsToOK(t *testing.T) {
	err := NewError(ErrRoomRequired)

	assert.Equal(t, http.StatusOK, err.Status)
}

func TestNewError_UnknownCode(t *testing.T) {
	err := NewError(424242)

	assert.Equal(t, ErrUnknown, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestNewError_DoesNotLeakCause(t *testing.T) {
	err := NewError(ErrTokenSigningFailed, fmt.Errorf("secret material is broken"))

	assert.NotContains(t, err.Message, "secret")
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("join: %w", NewError(ErrInvalidToken))

	assert.True(t, Is(wrapped, ErrInvalidToken))
	assert.False(t, Is(wrapped, ErrUnknown))
	assert.False(t, Is(fmt.Errorf("plain"), ErrInvalidToken))
}
