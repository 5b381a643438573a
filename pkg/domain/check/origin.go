package check

import (
	"fmt"
	"net/url"
	"strings"
)

// Origin is the scheme://host[:port] tuple a browser would put in the
// Origin request header. Scheme and host are stored lowercased, the port
// stays exactly as written.
type Origin struct {
	Scheme string
	Host   string
	Port   string
}

// ParseOrigin parses a serialized origin. The scheme must be http or https
// and nothing beyond the authority is allowed, except a bare trailing
// slash.
func ParseOrigin(raw string) (*Origin, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("must not be empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("scheme must be http or https")
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("host must not be empty")
	}
	if parsed.User != nil {
		return nil, fmt.Errorf("must not carry credentials")
	}
	if (parsed.Path != "" && parsed.Path != "/") || parsed.RawQuery != "" || parsed.Fragment != "" {
		return nil, fmt.Errorf("must not carry a path, query or fragment")
	}
	return &Origin{
		Scheme: parsed.Scheme,
		Host:   strings.ToLower(parsed.Hostname()),
		Port:   parsed.Port(),
	}, nil
}

// Matches reports whether an Access-Control-Allow-Origin value designates
// exactly this origin. Scheme and host compare case-insensitively, the port
// must match verbatim. The wildcard is the caller's business.
func (o *Origin) Matches(allowed string) bool {
	other, err := ParseOrigin(allowed)
	if err != nil {
		return false
	}
	return o.Scheme == other.Scheme && o.Host == other.Host && o.Port == other.Port
}

func (o *Origin) String() string {
	host := o.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if o.Port == "" {
		return o.Scheme + "://" + host
	}
	return o.Scheme + "://" + host + ":" + o.Port
}

// IsWellFormedURL reports whether raw parses as an absolute URL with both a
// scheme and a host. Unlike check inputs, any scheme is acceptable here.
func IsWellFormedURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
