package check

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/CorsCheck/pkg/common"
)

// PhaseResult records how one phase of a check went. It exists only when a
// response completed; a transport failure leaves the phase nil on the
// verdict.
type PhaseResult struct {
	Allowed        bool    `json:"allowed"`
	StatusCode     int     `json:"status_code"`
	Headers        Headers `json:"headers"`
	RequestHeaders Headers `json:"request_headers,omitempty"`
	AllowedOrigin  *string `json:"allowed_origin"`
}

// EvaluateExchange applies the allow-origin rules to a completed exchange
// and returns the phase result plus a short diagnostic note. Every
// completed response is evaluated, whatever its status code.
func EvaluateExchange(ex *Exchange, origin *Origin) (*PhaseResult, string) {
	result := &PhaseResult{
		StatusCode:     ex.StatusCode,
		Headers:        ex.Headers,
		RequestHeaders: ex.Sent,
	}
	if !ex.Headers.Has(common.AccessControlAllowOriginHeader) {
		return result, "access-control-allow-origin header missing"
	}
	value := strings.TrimSpace(ex.Headers.Get(common.AccessControlAllowOriginHeader))
	result.AllowedOrigin = &value
	if value == common.WildcardOrigin {
		result.Allowed = true
		return result, "any origin allowed by wildcard"
	}
	if origin.Matches(value) {
		result.Allowed = true
		return result, fmt.Sprintf("origin %s allowed by exact match", origin)
	}
	return result, fmt.Sprintf("allow-origin %q does not match origin %s", value, origin)
}
