package middleware

import (
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger      *logrus.Logger
	development bool
}

func NewPanicRecoverMiddleware(logger *logrus.Logger, development bool) Middleware {
	return &panicRecoverMiddleware{logger: logger, development: development}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.WithFields(logrus.Fields{
					"error": r,
					"path":  c.Path(),
				}).Error("HTTP server panic recovered")

				err = response.Internal(c, fmt.Errorf("panic: %v", r), m.development)
			}
		}()

		return c.Next()
	}
}
