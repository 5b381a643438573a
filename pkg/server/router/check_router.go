package router

import (
	handlers "github.com/NeuralTrust/CorsCheck/pkg/handlers/http"
	"github.com/NeuralTrust/CorsCheck/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

type checkRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewCheckRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &checkRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *checkRouter) BuildRoutes(router *fiber.App) error {
	router.Get("/version", r.handlerTransport.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		for _, mw := range r.middlewareTransport.Middlewares() {
			v1.Use(mw)
		}

		checks := v1.Group("/checks")
		{
			checks.Post("", r.handlerTransport.CheckHandler.Handle)
		}

		url := v1.Group("/url")
		{
			url.Get("/validate", r.handlerTransport.ValidateURLHandler.Handle)
		}
	}
	return nil
}
