package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	MetricsMiddleware Middleware
}

func (t *Transport) Middlewares() []fiber.Handler {
	if t == nil || t.MetricsMiddleware == nil {
		return nil
	}
	return []fiber.Handler{t.MetricsMiddleware.Middleware()}
}
