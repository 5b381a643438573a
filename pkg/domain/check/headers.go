package check

import (
	"net/http"
	"net/textproto"
	"sort"
	"strings"
)

// Headers is a case-insensitive view over a set of HTTP headers. Lookup
// ignores name casing, the names are preserved as received for display.
type Headers map[string][]string

// NewHeaders copies h into a Headers value.
func NewHeaders(h http.Header) Headers {
	out := make(Headers, len(h))
	for name, values := range h {
		out[name] = append([]string(nil), values...)
	}
	return out
}

// Get returns the first value for name, or "" when the header is absent.
func (h Headers) Get(name string) string {
	values := h.Values(name)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values recorded for name.
func (h Headers) Values(name string) []string {
	if values, ok := h[textproto.CanonicalMIMEHeaderKey(name)]; ok {
		return values
	}
	for candidate, values := range h {
		if strings.EqualFold(candidate, name) {
			return values
		}
	}
	return nil
}

// Has reports whether name is present, whatever its value.
func (h Headers) Has(name string) bool {
	return h.Values(name) != nil
}

// Names returns the header names in sorted order.
func (h Headers) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
