package check

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError is a field-level rejection of a check request. Neither
// phase runs when the request does not validate.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ConnectionError reports a probe that never produced a response.
type ConnectionError struct {
	Phase  Phase
	Target string
	Err    error
}

func NewConnectionError(phase Phase, target string, err error) error {
	return &ConnectionError{Phase: phase, Target: target, Err: err}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s request to %s failed: %v", e.Phase, e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TimeoutError reports a probe that ran out of time.
type TimeoutError struct {
	Phase   Phase
	Target  string
	Timeout time.Duration
	Err     error
}

func NewTimeoutError(phase Phase, target string, timeout time.Duration, err error) error {
	return &TimeoutError{Phase: phase, Target: target, Timeout: timeout, Err: err}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s request to %s timed out after %s", e.Phase, e.Target, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ProtocolError reports a response the HTTP client could not parse. With no
// headers to inspect, the phase is aborted like a transport failure.
type ProtocolError struct {
	Phase  Phase
	Target string
	Err    error
}

func NewProtocolError(phase Phase, target string, err error) error {
	return &ProtocolError{Phase: phase, Target: target, Err: err}
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s request to %s got a malformed response: %v", e.Phase, e.Target, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// FailureKind classifies a probe error for details and metrics labels.
func FailureKind(err error) string {
	var timeoutError *TimeoutError
	if errors.As(err, &timeoutError) {
		return "timeout"
	}
	var protocolError *ProtocolError
	if errors.As(err, &protocolError) {
		return "protocol"
	}
	var connectionError *ConnectionError
	if errors.As(err, &connectionError) {
		return "connection"
	}
	return "error"
}
