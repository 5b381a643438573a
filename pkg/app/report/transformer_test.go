package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successVerdict() *check.Verdict {
	allowed := "https://app.example.com"
	return &check.Verdict{
		ID:      uuid.New(),
		Success: true,
		Message: check.MessageConfigured,
		Origin:  "https://app.example.com",
		Target:  "https://api.example.com/v1/data",
		Method:  "GET",
		Preflight: &check.PhaseResult{
			Allowed:       true,
			StatusCode:    204,
			Headers:       check.Headers{"Access-Control-Allow-Origin": {allowed}},
			AllowedOrigin: &allowed,
			RequestHeaders: check.Headers{
				"Origin":                        {"https://app.example.com"},
				"Access-Control-Request-Method": {"GET"},
			},
		},
		Actual: &check.PhaseResult{
			Allowed:       true,
			StatusCode:    200,
			Headers:       check.Headers{"Access-Control-Allow-Origin": {allowed}},
			AllowedOrigin: &allowed,
			RequestHeaders: check.Headers{
				"Origin":  {"https://app.example.com"},
				"X-Debug": {""},
			},
		},
		Details: map[string]string{
			check.DetailPreflight: "origin https://app.example.com allowed by exact match",
			check.DetailActual:    "origin https://app.example.com allowed by exact match",
		},
		CheckedAt:  time.Now(),
		DurationMs: 42,
	}
}

func TestTransformer_TextNonVerbose(t *testing.T) {
	transformer := NewTransformer()

	assert.Equal(t, check.MessageConfigured, transformer.Text(successVerdict(), false))
}

func TestTransformer_TextVerbose(t *testing.T) {
	transformer := NewTransformer()
	out := transformer.Text(successVerdict(), true)

	assert.Contains(t, out, "Checking CORS from https://app.example.com to https://api.example.com/v1/data")
	assert.Contains(t, out, "Method: GET")
	assert.Contains(t, out, "Preflight request: OPTIONS")
	assert.Contains(t, out, "Actual request: GET")
	assert.Contains(t, out, "Status code: 204")
	assert.Contains(t, out, "Status code: 200")
	assert.Contains(t, out, "Access-Control-Request-Method: GET")
	assert.Contains(t, out, "Access-Control-Allow-Origin: https://app.example.com")
	assert.Contains(t, out, "X-Debug: \n", "bare headers show up with an empty value")
	assert.Contains(t, out, check.MessageConfigured)
}

func TestTransformer_TextVerboseTransportFailure(t *testing.T) {
	verdict := &check.Verdict{
		ID:      uuid.New(),
		Success: false,
		Message: "preflight request to https://api.example.com failed: connection refused",
		Origin:  "https://app.example.com",
		Target:  "https://api.example.com",
		Method:  "GET",
		Details: map[string]string{
			check.DetailFailedPhase: "preflight",
			check.DetailFailure:     "connection",
		},
	}

	out := NewTransformer().Text(verdict, true)

	assert.Contains(t, out, "preflight request to https://api.example.com failed: connection refused")
	assert.Contains(t, out, "not attempted")
}

func TestTransformer_JSON(t *testing.T) {
	verdict := successVerdict()
	out, err := NewTransformer().JSON(verdict)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, check.MessageConfigured, decoded["message"])
	assert.NotNil(t, decoded["preflight_check"])
	assert.NotNil(t, decoded["actual_check"])
}
