package check

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/common"
)

// Header is a single request header as given by the caller. Order is
// preserved end to end so diagnostic dumps mirror the input.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseHeader splits a "Name: Value" token on the first colon. A token
// without a colon becomes a header with an empty value.
func ParseHeader(token string) Header {
	name, value, found := strings.Cut(token, ":")
	if !found {
		return Header{Name: strings.TrimSpace(token)}
	}
	return Header{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
}

// ParseHeaders parses a list of "Name: Value" tokens preserving order.
func ParseHeaders(tokens []string) []Header {
	if len(tokens) == 0 {
		return nil
	}
	headers := make([]Header, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		headers = append(headers, ParseHeader(token))
	}
	return headers
}

// Request describes a single check: does target accept cross-origin calls
// from origin with the given method and extra headers.
type Request struct {
	Origin  string
	Target  string
	Method  string
	Headers []Header
	Timeout time.Duration
}

// ApplyDefaults fills method and timeout when the caller left them unset.
func (r *Request) ApplyDefaults(method string, timeout time.Duration) {
	if strings.TrimSpace(r.Method) == "" {
		r.Method = method
	}
	if r.Timeout == 0 {
		r.Timeout = timeout
	}
}

// CanonicalMethod returns the method as it is sent on the wire.
func (r *Request) CanonicalMethod() string {
	return strings.ToUpper(strings.TrimSpace(r.Method))
}

// Validate rejects requests that cannot be probed. It returns a
// ValidationError naming the offending field.
func (r *Request) Validate() error {
	if _, err := ParseOrigin(r.Origin); err != nil {
		return NewValidationError("origin", err.Error())
	}
	if err := validateTarget(r.Target); err != nil {
		return NewValidationError("target", err.Error())
	}
	if r.CanonicalMethod() == "" {
		return NewValidationError("method", "must not be empty")
	}
	if r.Timeout <= 0 {
		return NewValidationError("timeout", "must be greater than zero")
	}
	for _, h := range r.Headers {
		if strings.TrimSpace(h.Name) == "" {
			return NewValidationError("headers", "header name must not be empty")
		}
	}
	return nil
}

// PreflightHeaders builds the headers of the OPTIONS probe: the origin, the
// requested method and, when extra headers ride along, their lowercased
// names.
func (r *Request) PreflightHeaders() []Header {
	headers := []Header{
		{Name: common.OriginHeader, Value: strings.TrimSpace(r.Origin)},
		{Name: common.AccessControlRequestMethodHeader, Value: r.CanonicalMethod()},
	}
	if names := r.requestedHeaderNames(); names != "" {
		headers = append(headers, Header{Name: common.AccessControlRequestHeadersHeader, Value: names})
	}
	return headers
}

// ActualHeaders builds the headers of the actual probe: the origin plus the
// caller's extra headers verbatim.
func (r *Request) ActualHeaders() []Header {
	headers := make([]Header, 0, len(r.Headers)+1)
	headers = append(headers, Header{Name: common.OriginHeader, Value: strings.TrimSpace(r.Origin)})
	headers = append(headers, r.Headers...)
	return headers
}

func (r *Request) requestedHeaderNames() string {
	names := make([]string, 0, len(r.Headers))
	for _, h := range r.Headers {
		names = append(names, strings.ToLower(strings.TrimSpace(h.Name)))
	}
	return strings.Join(names, ",")
}

func validateTarget(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("must not be empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if parsed.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	return nil
}
