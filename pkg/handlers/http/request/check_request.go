package request

import (
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
)

type CheckRequest struct {
	Origin         string   `json:"origin" binding:"required"`
	Target         string   `json:"target" binding:"required"`
	Method         string   `json:"method"`
	Headers        []string `json:"headers"`
	TimeoutSeconds float64  `json:"timeout_seconds"`
}

// ToDomain maps the payload onto a domain request, filling method and
// timeout from the configured defaults when absent.
func (r *CheckRequest) ToDomain(defaultMethod string, defaultTimeout time.Duration) *check.Request {
	req := &check.Request{
		Origin:  r.Origin,
		Target:  r.Target,
		Method:  r.Method,
		Headers: check.ParseHeaders(r.Headers),
		Timeout: time.Duration(r.TimeoutSeconds * float64(time.Second)),
	}
	req.ApplyDefaults(defaultMethod, defaultTimeout)
	return req
}
