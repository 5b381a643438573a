package checker

import (
	"context"
	"net/http"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Evaluator runs the two-phase CORS check and renders a verdict.
type Evaluator interface {
	Evaluate(ctx context.Context, req *check.Request) (*check.Verdict, error)
}

type evaluator struct {
	logger *logrus.Logger
	prober check.Prober
}

func NewEvaluator(logger *logrus.Logger, prober check.Prober) Evaluator {
	return &evaluator{
		logger: logger,
		prober: prober,
	}
}

// Evaluate probes the target with an OPTIONS preflight and then with the
// actual method, evaluating each completed response against the origin. A
// transport failure aborts the check from that phase on; the returned error
// is non-nil only when the request itself does not validate.
func (e *evaluator) Evaluate(ctx context.Context, req *check.Request) (*check.Verdict, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	origin, err := check.ParseOrigin(req.Origin)
	if err != nil {
		return nil, check.NewValidationError("origin", err.Error())
	}

	started := time.Now()
	verdict := &check.Verdict{
		ID:        uuid.New(),
		Origin:    req.Origin,
		Target:    req.Target,
		Method:    req.CanonicalMethod(),
		Details:   make(map[string]string),
		CheckedAt: started,
	}

	preflight, err := e.prober.Probe(ctx, check.ProbeRequest{
		Phase:   check.PhasePreflight,
		Method:  http.MethodOptions,
		Target:  req.Target,
		Headers: req.PreflightHeaders(),
		Timeout: req.Timeout,
	})
	if err != nil {
		return e.abort(verdict, check.PhasePreflight, err, started), nil
	}
	result, note := check.EvaluateExchange(preflight, origin)
	verdict.Preflight = result
	verdict.Details[check.DetailPreflight] = note

	actual, err := e.prober.Probe(ctx, check.ProbeRequest{
		Phase:   check.PhaseActual,
		Method:  verdict.Method,
		Target:  req.Target,
		Headers: req.ActualHeaders(),
		Timeout: req.Timeout,
	})
	if err != nil {
		return e.abort(verdict, check.PhaseActual, err, started), nil
	}
	result, note = check.EvaluateExchange(actual, origin)
	verdict.Actual = result
	verdict.Details[check.DetailActual] = note

	verdict.Success = verdict.Preflight.Allowed && verdict.Actual.Allowed
	if verdict.Success {
		verdict.Message = check.MessageConfigured
	} else {
		verdict.Message = check.MessageNotConfigured
	}
	verdict.DurationMs = time.Since(started).Milliseconds()

	e.logger.WithFields(logrus.Fields{
		"origin":  verdict.Origin,
		"target":  verdict.Target,
		"method":  verdict.Method,
		"success": verdict.Success,
	}).Info("check completed")

	return verdict, nil
}

func (e *evaluator) abort(verdict *check.Verdict, phase check.Phase, err error, started time.Time) *check.Verdict {
	verdict.Success = false
	verdict.Message = err.Error()
	verdict.Details[check.DetailFailedPhase] = string(phase)
	verdict.Details[check.DetailFailure] = check.FailureKind(err)
	verdict.DurationMs = time.Since(started).Milliseconds()

	e.logger.WithError(err).WithFields(logrus.Fields{
		"origin": verdict.Origin,
		"target": verdict.Target,
		"phase":  phase,
	}).Warn("check aborted")

	return verdict
}
