package httpprobe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const maxDrainBytes = 64 * 1024

// Prober issues single HTTP requests and reports what came back. Redirects
// are never followed: a 3xx is a completed response like any other.
type Prober struct {
	logger *logrus.Logger
	client *http.Client
}

func NewProber(logger *logrus.Logger) *Prober {
	return &Prober{
		logger: logger,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *Prober) Probe(ctx context.Context, req check.ProbeRequest) (*check.Exchange, error) {
	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Target, nil)
	if err != nil {
		return nil, check.NewConnectionError(req.Phase, req.Target, err)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}

	started := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		classified := p.classify(req, err)
		p.logger.WithError(classified).WithFields(logrus.Fields{
			"phase":  req.Phase,
			"method": req.Method,
			"target": req.Target,
		}).Debug("probe failed")
		return nil, classified
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	elapsed := time.Since(started)
	if prometheus.Config.EnableLatency {
		prometheus.CheckPhaseLatency.WithLabelValues(string(req.Phase)).
			Observe(float64(elapsed.Milliseconds()))
	}

	p.logger.WithFields(logrus.Fields{
		"phase":      req.Phase,
		"method":     req.Method,
		"target":     req.Target,
		"status":     resp.StatusCode,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Debug("probe completed")

	return &check.Exchange{
		StatusCode: resp.StatusCode,
		Headers:    check.NewHeaders(resp.Header),
		Sent:       check.NewHeaders(httpReq.Header),
	}, nil
}

func (p *Prober) classify(req check.ProbeRequest, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return check.NewTimeoutError(req.Phase, req.Target, req.Timeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return check.NewTimeoutError(req.Phase, req.Target, req.Timeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && isMalformedResponse(urlErr.Err) {
		return check.NewProtocolError(req.Phase, req.Target, urlErr.Err)
	}
	return check.NewConnectionError(req.Phase, req.Target, err)
}

func isMalformedResponse(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "malformed HTTP") || strings.Contains(msg, "malformed MIME")
}
