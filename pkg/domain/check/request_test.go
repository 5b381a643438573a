package check

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Header
	}{
		{
			name:  "name and value",
			token: "X-Custom-Header: value",
			want:  Header{Name: "X-Custom-Header", Value: "value"},
		},
		{
			name:  "value with colon",
			token: "Referer: https://example.com/app",
			want:  Header{Name: "Referer", Value: "https://example.com/app"},
		},
		{
			name:  "no explicit value",
			token: "X-Debug",
			want:  Header{Name: "X-Debug", Value: ""},
		},
		{
			name:  "empty value after colon",
			token: "X-Debug:",
			want:  Header{Name: "X-Debug", Value: ""},
		},
		{
			name:  "whitespace is trimmed",
			token: "  Authorization :  Bearer abc  ",
			want:  Header{Name: "Authorization", Value: "Bearer abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHeader(tt.token))
		})
	}
}

func TestParseHeaders(t *testing.T) {
	headers := ParseHeaders([]string{"X-A: 1", "X-B", "", "X-C: 3"})

	require.Len(t, headers, 3)
	assert.Equal(t, Header{Name: "X-A", Value: "1"}, headers[0])
	assert.Equal(t, Header{Name: "X-B"}, headers[1])
	assert.Equal(t, Header{Name: "X-C", Value: "3"}, headers[2])

	assert.Nil(t, ParseHeaders(nil))
}

func TestRequest_Validate(t *testing.T) {
	valid := func() Request {
		return Request{
			Origin:  "https://app.example.com",
			Target:  "https://api.example.com/v1/data",
			Method:  "GET",
			Timeout: 10 * time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:   "lowercase method is acceptable",
			mutate: func(r *Request) { r.Method = "post" },
		},
		{
			name:    "empty origin",
			mutate:  func(r *Request) { r.Origin = "" },
			wantErr: "invalid origin",
		},
		{
			name:    "origin with path",
			mutate:  func(r *Request) { r.Origin = "https://app.example.com/login" },
			wantErr: "invalid origin",
		},
		{
			name:    "target without scheme",
			mutate:  func(r *Request) { r.Target = "api.example.com" },
			wantErr: "invalid target",
		},
		{
			name:    "target with unsupported scheme",
			mutate:  func(r *Request) { r.Target = "ws://api.example.com" },
			wantErr: "invalid target",
		},
		{
			name:    "empty method",
			mutate:  func(r *Request) { r.Method = "   " },
			wantErr: "invalid method",
		},
		{
			name:    "zero timeout",
			mutate:  func(r *Request) { r.Timeout = 0 },
			wantErr: "invalid timeout",
		},
		{
			name:    "negative timeout",
			mutate:  func(r *Request) { r.Timeout = -time.Second },
			wantErr: "invalid timeout",
		},
		{
			name:    "nameless header",
			mutate:  func(r *Request) { r.Headers = []Header{{Name: "", Value: "x"}} },
			wantErr: "invalid headers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRequest_ApplyDefaults(t *testing.T) {
	req := Request{Origin: "https://a.com", Target: "https://b.com"}
	req.ApplyDefaults("GET", 10*time.Second)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, 10*time.Second, req.Timeout)

	req = Request{Origin: "https://a.com", Target: "https://b.com", Method: "DELETE", Timeout: time.Second}
	req.ApplyDefaults("GET", 10*time.Second)

	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, time.Second, req.Timeout)
}

func TestRequest_PreflightHeaders(t *testing.T) {
	req := Request{
		Origin: "https://app.example.com",
		Target: "https://api.example.com",
		Method: "post",
		Headers: []Header{
			{Name: "X-Custom-Header", Value: "1"},
			{Name: "Authorization", Value: "Bearer abc"},
		},
		Timeout: 10 * time.Second,
	}

	headers := req.PreflightHeaders()
	require.Len(t, headers, 3)
	assert.Equal(t, Header{Name: "Origin", Value: "https://app.example.com"}, headers[0])
	assert.Equal(t, Header{Name: "Access-Control-Request-Method", Value: "POST"}, headers[1])
	assert.Equal(t, Header{Name: "Access-Control-Request-Headers", Value: "x-custom-header,authorization"}, headers[2])
}

func TestRequest_PreflightHeaders_NoExtraHeaders(t *testing.T) {
	req := Request{Origin: "https://a.com", Target: "https://b.com", Method: "GET"}

	headers := req.PreflightHeaders()
	require.Len(t, headers, 2)
	for _, h := range headers {
		assert.NotEqual(t, "Access-Control-Request-Headers", h.Name)
	}
}

func TestRequest_ActualHeaders(t *testing.T) {
	req := Request{
		Origin:  "https://app.example.com",
		Method:  "GET",
		Headers: []Header{{Name: "X-Debug", Value: ""}, {Name: "X-Trace", Value: "t1"}},
	}

	headers := req.ActualHeaders()
	require.Len(t, headers, 3)
	assert.Equal(t, Header{Name: "Origin", Value: "https://app.example.com"}, headers[0])
	assert.Equal(t, Header{Name: "X-Debug", Value: ""}, headers[1])
	assert.Equal(t, Header{Name: "X-Trace", Value: "t1"}, headers[2])
}
