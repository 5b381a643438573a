package server

import (
	"fmt"

	"github.com/NeuralTrust/CorsCheck/pkg/config"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/prometheus"
	"github.com/NeuralTrust/CorsCheck/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	CheckServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	CheckServer struct {
		*BaseServer
	}
)

func NewCheckServer(di CheckServerDI) *CheckServer {
	if di.Config.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{
			EnableLatency: di.Config.Metrics.EnableLatency,
		})
	}

	s := &CheckServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	s.BaseServer.setupHealthCheck()
	s.BaseServer.setupMetricsEndpoint()
	return s
}

func (s *CheckServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting check API server")
	return s.Router.Listen(addr)
}

func (s *CheckServer) Shutdown() error {
	return s.Router.Shutdown()
}
