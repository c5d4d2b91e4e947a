package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/app/ratelimit"
	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type rateLimitMiddleware struct {
	limiter      ratelimit.Limiter
	timeProvider func() time.Time
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, timeProvider func() time.Time) Middleware {
	if timeProvider == nil {
		timeProvider = time.Now
	}
	return &rateLimitMiddleware{
		limiter:      limiter,
		timeProvider: timeProvider,
	}
}

// Middleware evaluates the caller's API key, if auth stored one. Requests
// without a credential and requests evaluated while the store is down pass
// through without rate limit headers.
func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		credential, _ := c.Locals(common.ApiKeyContextKey).(string)

		result := m.limiter.Evaluate(c.UserContext(), credential, m.timeProvider())
		if !result.Evaluated() {
			return c.Next()
		}

		c.Set(common.RateLimitLimitHeader, strconv.Itoa(m.limiter.Max()))
		c.Set(common.RateLimitRemainingHeader, strconv.Itoa(result.Remaining))
		c.Set(common.RateLimitResetHeader, strconv.FormatInt(result.ResetEpochSeconds, 10))

		if !result.Allowed {
			window := m.limiter.WindowSeconds()
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      utils.StatusMessage(fiber.StatusTooManyRequests),
				"message":    exceededMessage(m.limiter.Max(), window),
				"retryAfter": window,
			})
		}
		return c.Next()
	}
}

func exceededMessage(max, windowSeconds int) string {
	minutes := strconv.FormatFloat(float64(windowSeconds)/60, 'f', -1, 64)
	return fmt.Sprintf("The limit of %d requests per %s minutes has been exceeded.", max, minutes)
}
