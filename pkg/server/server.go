package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/prometheus"
	"github.com/NeuralTrust/TaskAPI/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const shutdownTimeout = 10 * time.Second

// Server interface defines the common behavior for all servers
type Server interface {
	Run() error
	Shutdown() error
}

type BaseServer struct {
	Config         *config.Config
	Logger         *logrus.Logger
	Router         *fiber.App
	metricsApp     *fiber.App
	metricsStarted bool
}

func NewBaseServer(cfg *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		AppName:               "TaskAPI",
		DisableStartupMessage: true,
		Network:               fiber.NetworkTCP,
		BodyLimit:             cfg.Server.BodyLimit,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ErrorHandler:          ErrorHandler(logger, cfg.Server.IsDevelopment()),
	})
	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		Config: cfg,
		Logger: logger,
		Router: r,
	}
}

// ErrorHandler renders errors that escaped a handler in the API's JSON error
// shape. Fiber errors keep their status; anything else is a 500.
func ErrorHandler(logger *logrus.Logger, development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return response.Error(c, fe.Code, router.RouteNotFoundMessage)
			}
			return response.Error(c, fe.Code, fe.Message)
		}
		logger.WithError(err).WithField("path", c.Path()).Error("unhandled request error")
		return response.Internal(c, err, development)
	}
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) *BaseServer {
	for _, r := range routers {
		if err := r.BuildRoutes(s.Router); err != nil {
			s.Logger.WithError(err).Error("failed to build routes")
		}
	}
	return s
}

func (s *BaseServer) setupMetricsEndpoint() {
	if !s.Config.Metrics.Enabled {
		s.Logger.Info("prometheus metrics are disabled by configuration")
		return
	}
	if s.metricsStarted {
		return
	}
	s.metricsStarted = true

	s.metricsApp = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.metricsApp.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(prometheus.Handler())
	s.metricsApp.Get("/metrics", func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})

	go func() {
		addr := fmt.Sprintf(":%d", s.Config.Server.MetricsPort)
		if err := s.metricsApp.Listen(addr); err != nil {
			if !strings.Contains(err.Error(), "address already in use") {
				s.Logger.WithError(err).Error("failed to start metrics server")
			}
		}
	}()
}

func (s *BaseServer) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsApp != nil {
		if err := s.metricsApp.ShutdownWithContext(ctx); err != nil {
			s.Logger.WithError(err).Warn("failed to stop metrics server")
		}
	}
	return s.Router.ShutdownWithContext(ctx)
}
