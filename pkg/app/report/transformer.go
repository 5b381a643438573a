package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
)

// Transformer renders verdicts for humans and machines.
type Transformer struct {
}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Text renders a verdict as plain text. Non-verbose output is the verdict
// message alone; verbose output adds the per-phase exchange dumps.
func (t Transformer) Text(v *check.Verdict, verbose bool) string {
	if !verbose {
		return v.Message
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Checking CORS from %s to %s\n", v.Origin, v.Target)
	fmt.Fprintf(&b, "Method: %s\n\n", v.Method)

	t.writePhase(&b, v, check.PhasePreflight, "Preflight request: OPTIONS", v.Preflight, v.Details[check.DetailPreflight])
	b.WriteString("\n")
	t.writePhase(&b, v, check.PhaseActual, "Actual request: "+v.Method, v.Actual, v.Details[check.DetailActual])
	b.WriteString("\n")
	b.WriteString(v.Message)
	b.WriteString("\n")
	return b.String()
}

// JSON renders a verdict as an indented JSON document.
func (t Transformer) JSON(v *check.Verdict) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode verdict: %w", err)
	}
	return string(raw), nil
}

func (t Transformer) writePhase(
	b *strings.Builder,
	v *check.Verdict,
	phase check.Phase,
	title string,
	result *check.PhaseResult,
	note string,
) {
	b.WriteString(title + "\n")
	if result == nil {
		if v.Details[check.DetailFailedPhase] == string(phase) {
			fmt.Fprintf(b, "  %s\n", v.Message)
		} else {
			b.WriteString("  not attempted\n")
		}
		return
	}
	fmt.Fprintf(b, "  Status code: %d\n", result.StatusCode)
	if len(result.RequestHeaders) > 0 {
		b.WriteString("  Request headers:\n")
		writeHeaders(b, result.RequestHeaders)
	}
	b.WriteString("  Response headers:\n")
	writeHeaders(b, result.Headers)
	if note != "" {
		fmt.Fprintf(b, "  %s\n", note)
	}
}

func writeHeaders(b *strings.Builder, headers check.Headers) {
	for _, name := range headers.Names() {
		for _, value := range headers.Values(name) {
			fmt.Fprintf(b, "    %s: %s\n", name, value)
		}
	}
}
