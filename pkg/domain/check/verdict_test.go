package check

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict_JSONKeepsNullPhases(t *testing.T) {
	verdict := Verdict{
		ID:      uuid.New(),
		Success: false,
		Message: "preflight request to https://api.example.com failed: connection refused",
		Origin:  "https://app.example.com",
		Target:  "https://api.example.com",
		Method:  "GET",
	}

	raw, err := json.Marshal(&verdict)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "preflight_check")
	assert.Nil(t, decoded["preflight_check"])
	assert.Contains(t, decoded, "actual_check")
	assert.Nil(t, decoded["actual_check"])
	assert.NotContains(t, decoded, "details")
}

func TestVerdict_JSONAllowedOriginNull(t *testing.T) {
	verdict := Verdict{
		ID:      uuid.New(),
		Success: false,
		Message: MessageNotConfigured,
		Preflight: &PhaseResult{
			Allowed:    false,
			StatusCode: 200,
			Headers:    Headers{"Content-Type": {"text/html"}},
		},
	}

	raw, err := json.Marshal(&verdict)
	require.NoError(t, err)

	var decoded struct {
		Preflight map[string]interface{} `json:"preflight_check"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.NotNil(t, decoded.Preflight)
	assert.Contains(t, decoded.Preflight, "allowed_origin")
	assert.Nil(t, decoded.Preflight["allowed_origin"])
	assert.Equal(t, float64(200), decoded.Preflight["status_code"])
}
