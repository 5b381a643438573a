package check

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("origin", "must not be empty")

	assert.Equal(t, "invalid origin: must not be empty", err.Error())
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("check failed: %w", err)))
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(errors.New("other")))
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewConnectionError(PhasePreflight, "https://api.example.com", cause)

	assert.Equal(t, "preflight request to https://api.example.com failed: dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestTimeoutError(t *testing.T) {
	err := NewTimeoutError(PhaseActual, "https://api.example.com", 10*time.Second, errors.New("deadline exceeded"))

	assert.Equal(t, "actual request to https://api.example.com timed out after 10s", err.Error())
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "timeout", FailureKind(NewTimeoutError(PhasePreflight, "https://x", time.Second, nil)))
	assert.Equal(t, "connection", FailureKind(NewConnectionError(PhaseActual, "https://x", errors.New("refused"))))
	assert.Equal(t, "protocol", FailureKind(NewProtocolError(PhaseActual, "https://x", errors.New("malformed"))))
	assert.Equal(t, "error", FailureKind(errors.New("other")))
}
