package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/CorsCheck/pkg/app/checker"
	"github.com/NeuralTrust/CorsCheck/pkg/config"
	handlers "github.com/NeuralTrust/CorsCheck/pkg/handlers/http"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/httpprobe"
	infraLogger "github.com/NeuralTrust/CorsCheck/pkg/infra/logger"
	"github.com/NeuralTrust/CorsCheck/pkg/middleware"
	"github.com/NeuralTrust/CorsCheck/pkg/server"
	"github.com/NeuralTrust/CorsCheck/pkg/server/router"
)

// ServeCmd starts the HTTP check API.
type ServeCmd struct {
	Config string `long:"config" description:"Directory holding corscheck.yaml"`
}

func (s *ServeCmd) Execute(_ []string) error {
	if err := config.Load(s.Config); err != nil {
		return err
	}
	cfg := config.GetConfig()

	logger := infraLogger.NewServerLogger(cfg.Logging.Level, "logs/server.log")

	prober := httpprobe.NewProber(logger)
	evaluator := checker.NewEvaluator(logger, prober)

	middlewareTransport := &middleware.Transport{
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		// Check
		CheckHandler:       handlers.NewCheckHandler(logger, evaluator, cfg.Defaults),
		ValidateURLHandler: handlers.NewValidateURLHandler(logger),
		// Version
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewCheckServer(server.CheckServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewCheckRouter(middlewareTransport, handlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
	return nil
}
