package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

type metricsMiddleware struct{}

func NewMetricsMiddleware() Middleware {
	return &metricsMiddleware{}
}

// Middleware labels by route pattern rather than raw path to keep task ids
// out of the label set.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime, ok := c.Locals(common.LatencyContextKey).(time.Time)
		if !ok {
			startTime = time.Now()
		}

		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		prometheus.RequestTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(c.Method(), route).
				Observe(float64(time.Since(startTime).Milliseconds()))
		}
		return err
	}
}
