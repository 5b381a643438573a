package check

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageConfigured    = "CORS is properly configured"
	MessageNotConfigured = "CORS is not properly configured"
)

// Detail keys used on Verdict.Details.
const (
	DetailPreflight   = "preflight"
	DetailActual      = "actual"
	DetailFailedPhase = "failed_phase"
	DetailFailure     = "failure"
)

// Verdict is the full outcome of one CORS check.
type Verdict struct {
	ID         uuid.UUID         `json:"id"`
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Origin     string            `json:"origin"`
	Target     string            `json:"target"`
	Method     string            `json:"method"`
	Preflight  *PhaseResult      `json:"preflight_check"`
	Actual     *PhaseResult      `json:"actual_check"`
	Details    map[string]string `json:"details,omitempty"`
	CheckedAt  time.Time         `json:"checked_at"`
	DurationMs int64             `json:"duration_ms"`
}
