package http

import (
	"github.com/NeuralTrust/CorsCheck/pkg/app/checker"
	"github.com/NeuralTrust/CorsCheck/pkg/config"
	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
	"github.com/NeuralTrust/CorsCheck/pkg/handlers/http/request"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type checkHandler struct {
	logger    *logrus.Logger
	evaluator checker.Evaluator
	defaults  config.DefaultsConfig
}

func NewCheckHandler(
	logger *logrus.Logger,
	evaluator checker.Evaluator,
	defaults config.DefaultsConfig,
) Handler {
	return &checkHandler{
		logger:    logger,
		evaluator: evaluator,
		defaults:  defaults,
	}
}

// Handle @Summary Run a CORS check
// @Description Probes the target with a preflight and an actual request on behalf of the origin
// @Tags Checks
// @Accept json
// @Produce json
// @Success 200 {object} check.Verdict "Check verdict"
// @Failure 400 {object} map[string]interface{} "Invalid check request"
// @Router /api/v1/checks [post]
func (h *checkHandler) Handle(c *fiber.Ctx) error {
	var payload request.CheckRequest

	if err := c.BodyParser(&payload); err != nil {
		h.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	verdict, err := h.evaluator.Evaluate(
		c.Context(),
		payload.ToDomain(h.defaults.Method, h.defaults.Timeout()),
	)
	if err != nil {
		if check.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("Failed to run check")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	prometheus.CheckTotal.WithLabelValues(outcome(verdict)).Inc()

	return c.Status(fiber.StatusOK).JSON(verdict)
}

func outcome(verdict *check.Verdict) string {
	if verdict.Success {
		return "pass"
	}
	if verdict.Details[check.DetailFailedPhase] != "" {
		return "error"
	}
	return "fail"
}
