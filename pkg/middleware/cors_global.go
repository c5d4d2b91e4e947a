package middleware

import (
	"strings"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/gofiber/fiber/v2"
)

type corsGlobalMiddleware struct {
	allowOrigins  []string
	allowMethods  []string
	allowHeaders  []string
	exposeHeaders []string
}

// NewCORSGlobalMiddleware never sends Access-Control-Allow-Credentials.
func NewCORSGlobalMiddleware(cfg config.CORSConfig) Middleware {
	return &corsGlobalMiddleware{
		allowOrigins:  cfg.AllowOrigins,
		allowMethods:  cfg.AllowMethods,
		allowHeaders:  cfg.AllowHeaders,
		exposeHeaders: cfg.ExposeHeaders,
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || !m.allowed(origin) {
			return c.Next()
		}

		if hasStar(m.allowOrigins) {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		} else {
			c.Vary(fiber.HeaderOrigin)
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		}
		if len(m.exposeHeaders) > 0 {
			c.Set(fiber.HeaderAccessControlExposeHeaders, strings.Join(m.exposeHeaders, ", "))
		}

		if c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, strings.Join(m.allowMethods, ", "))
			c.Set(fiber.HeaderAccessControlAllowHeaders, strings.Join(m.allowHeaders, ", "))
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func (m *corsGlobalMiddleware) allowed(origin string) bool {
	for _, o := range m.allowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
