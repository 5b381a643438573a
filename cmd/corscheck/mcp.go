package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/app/checker"
	"github.com/NeuralTrust/CorsCheck/pkg/app/report"
	"github.com/NeuralTrust/CorsCheck/pkg/config"
	"github.com/NeuralTrust/CorsCheck/pkg/handlers/mcp"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/httpprobe"
	infraLogger "github.com/NeuralTrust/CorsCheck/pkg/infra/logger"
)

// MCPCmd starts the MCP tool server over streamable HTTP.
type MCPCmd struct {
	Addr   string `long:"addr" description:"Listen address as host:port (default from config)"`
	Config string `long:"config" description:"Directory holding corscheck.yaml"`
}

func (m *MCPCmd) Execute(_ []string) error {
	if err := config.Load(m.Config); err != nil {
		return err
	}
	cfg := config.GetConfig()

	addr := m.Addr
	if addr == "" {
		addr = cfg.MCP.Addr
	}

	logger := infraLogger.NewServerLogger(cfg.Logging.Level, "logs/mcp.log")

	evaluator := checker.NewEvaluator(logger, httpprobe.NewProber(logger))
	handler := mcp.NewToolHandler(logger, evaluator, report.NewTransformer(), cfg.Defaults)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := mcp.NewHTTPServer(ctx, handler, addr)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("addr", addr).Info("Starting MCP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("MCP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
	return nil
}
