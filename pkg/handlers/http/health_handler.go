package http

import (
	"context"
	"math"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

type healthHandler struct {
	logger       *logrus.Logger
	startedAt    time.Time
	database     PingFunc
	redis        PingFunc
	timeProvider func() time.Time
}

func NewHealthHandler(
	logger *logrus.Logger,
	startedAt time.Time,
	database PingFunc,
	redis PingFunc,
	timeProvider func() time.Time,
) Handler {
	if timeProvider == nil {
		timeProvider = time.Now
	}
	return &healthHandler{
		logger:       logger,
		startedAt:    startedAt,
		database:     database,
		redis:        redis,
		timeProvider: timeProvider,
	}
}

// Handle @Summary Health check
// @Description Reports process uptime and the reachability of postgres and redis
// @Tags System
// @Produce json
// @Success 200 {object} response.HealthOutput
// @Router /api/health [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	now := h.timeProvider()
	uptime := now.Sub(h.startedAt).Seconds()

	return c.Status(fiber.StatusOK).JSON(response.HealthOutput{
		Status:    "ok",
		Uptime:    math.Round(uptime*1000) / 1000,
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Dependencies: response.HealthDependencies{
			Database: h.check(ctx, "database", h.database),
			Redis:    h.check(ctx, "redis", h.redis),
		},
	})
}

func (h *healthHandler) check(ctx context.Context, name string, ping PingFunc) string {
	if ping == nil {
		return response.StatusDown
	}
	if err := ping(ctx); err != nil {
		h.logger.WithError(err).WithField("dependency", name).Warn("health check failed")
		return response.StatusDown
	}
	return response.StatusUp
}
