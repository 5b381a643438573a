package functional_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/NeuralTrust/CorsCheck/pkg/app/checker"
	"github.com/NeuralTrust/CorsCheck/pkg/config"
	handlers "github.com/NeuralTrust/CorsCheck/pkg/handlers/http"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/httpprobe"
	"github.com/NeuralTrust/CorsCheck/pkg/middleware"
	"github.com/NeuralTrust/CorsCheck/pkg/server/router"
)

// newCheckApp wires the full check stack, real prober included, onto an
// in-process fiber app.
func newCheckApp(t *testing.T) *fiber.App {
	logger := logrus.New()

	prober := httpprobe.NewProber(logger)
	evaluator := checker.NewEvaluator(logger, prober)

	middlewareTransport := &middleware.Transport{
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger),
	}
	handlerTransport := handlers.HandlerTransport{
		CheckHandler:       handlers.NewCheckHandler(logger, evaluator, testDefaults()),
		ValidateURLHandler: handlers.NewValidateURLHandler(logger),
		GetVersionHandler:  handlers.NewGetVersionHandler(logger),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	require.NoError(t, router.NewCheckRouter(middlewareTransport, handlerTransport).BuildRoutes(app))
	return app
}

func testDefaults() config.DefaultsConfig {
	return config.DefaultsConfig{Method: "GET", TimeoutSeconds: 5, Output: "text"}
}

// newCorsBackend serves a minimal CORS endpoint. Empty origin values leave
// the Access-Control-Allow-Origin header out for that phase.
func newCorsBackend(preflightOrigin, actualOrigin string, actualStatus int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			if preflightOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", preflightOrigin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if actualOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", actualOrigin)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(actualStatus)
		_, _ = w.Write([]byte(`{"data":"ok"}`))
	}))
}

func sendRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var respData map[string]interface{}
	require.NoError(t, json.Unmarshal(respBytes, &respData))

	return resp.StatusCode, respData
}

func phaseResult(t *testing.T, resp map[string]interface{}, key string) map[string]interface{} {
	raw, ok := resp[key]
	require.True(t, ok, "response has no %s", key)
	result, ok := raw.(map[string]interface{})
	require.True(t, ok, "%s is not an object: %v", key, raw)
	return result
}
