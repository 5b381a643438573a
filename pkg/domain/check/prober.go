package check

import (
	"context"
	"time"
)

// Phase names the two requests of a check.
type Phase string

const (
	PhasePreflight Phase = "preflight"
	PhaseActual    Phase = "actual"
)

// ProbeRequest is one outbound request of a check.
type ProbeRequest struct {
	Phase   Phase
	Method  string
	Target  string
	Headers []Header
	Timeout time.Duration
}

// Exchange is the observable outcome of a completed probe. Sent carries the
// request headers as they went out on the wire.
type Exchange struct {
	StatusCode int
	Headers    Headers
	Sent       Headers
}

// Prober performs a single HTTP exchange against the target. When no
// response completed the error is a ConnectionError, TimeoutError or
// ProtocolError.
type Prober interface {
	Probe(ctx context.Context, req ProbeRequest) (*Exchange, error)
}
