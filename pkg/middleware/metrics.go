package middleware

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{
		logger: logger,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = errorStatus(err)
		}
		prometheus.HTTPRequestTotal.WithLabelValues(c.Method(), statusClass(status)).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.HTTPRequestLatency.WithLabelValues(c.Method()).
				Observe(float64(time.Since(start).Milliseconds()))
		}

		return err
	}
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}

func errorStatus(err error) int {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
