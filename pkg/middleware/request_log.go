package middleware

import (
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type requestLogMiddleware struct {
	logger *logrus.Logger
}

func NewRequestLogMiddleware(logger *logrus.Logger) Middleware {
	return &requestLogMiddleware{logger: logger}
}

func (m *requestLogMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Locals(common.LatencyContextKey, start)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		entry := m.logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Error("request completed")
		} else {
			entry.Info("request completed")
		}
		return err
	}
}
