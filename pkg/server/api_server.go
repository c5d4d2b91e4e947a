package server

import (
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/prometheus"
	"github.com/NeuralTrust/TaskAPI/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: di.Config.Metrics.EnableLatency,
	})

	s := &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.WithRouters(di.Routers...)
	s.setupMetricsEndpoint()
	return s
}

func (s *APIServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	s.Logger.Info("shutting down api server")
	return s.shutdown()
}
