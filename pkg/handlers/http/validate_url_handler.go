package http

import (
	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type validateURLHandler struct {
	logger *logrus.Logger
}

func NewValidateURLHandler(logger *logrus.Logger) Handler {
	return &validateURLHandler{
		logger: logger,
	}
}

// Handle @Summary Validate a URL
// @Description Reports whether the given string parses as an absolute URL
// @Tags Checks
// @Produce json
// @Success 200 {object} map[string]interface{} "Validation outcome"
// @Failure 400 {object} map[string]interface{} "Missing url parameter"
// @Router /api/v1/url/validate [get]
func (h *validateURLHandler) Handle(c *fiber.Ctx) error {
	raw := c.Query("url")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url query parameter is required"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url":   raw,
		"valid": check.IsWellFormedURL(raw),
	})
}
