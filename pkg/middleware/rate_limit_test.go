package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/app/ratelimit"
	"github.com/NeuralTrust/TaskAPI/pkg/app/ratelimit/mocks"
	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/NeuralTrust/TaskAPI/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

func newRateLimitApp(limiter *mocks.Limiter, apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if apiKey != "" {
			c.Locals(common.ApiKeyContextKey, apiKey)
		}
		return c.Next()
	})
	app.Use(middleware.NewRateLimitMiddleware(limiter, func() time.Time { return fixedNow }).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	return app
}

func TestRateLimitMiddleware_Allowed(t *testing.T) {
	limiter := new(mocks.Limiter)
	limiter.On("Evaluate", mock.Anything, "k1", fixedNow).Return(ratelimit.Result{
		Allowed:           true,
		Remaining:         99,
		ResetEpochSeconds: 1700000900,
		CurrentCount:      1,
	})
	limiter.On("Max").Return(100)

	resp, err := newRateLimitApp(limiter, "k1").Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "100", resp.Header.Get(common.RateLimitLimitHeader))
	assert.Equal(t, "99", resp.Header.Get(common.RateLimitRemainingHeader))
	assert.Equal(t, "1700000900", resp.Header.Get(common.RateLimitResetHeader))
}

func TestRateLimitMiddleware_Denied(t *testing.T) {
	limiter := new(mocks.Limiter)
	limiter.On("Evaluate", mock.Anything, "k1", fixedNow).Return(ratelimit.Result{
		Allowed:           false,
		Remaining:         0,
		ResetEpochSeconds: 1700000900,
		CurrentCount:      101,
	})
	limiter.On("Max").Return(100)
	limiter.On("WindowSeconds").Return(900)

	resp, err := newRateLimitApp(limiter, "k1").Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get(common.RateLimitRemainingHeader))
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Too Many Requests", body["error"])
	assert.Equal(t, "The limit of 100 requests per 15 minutes has been exceeded.", body["message"])
	assert.Equal(t, float64(900), body["retryAfter"])
}

func TestRateLimitMiddleware_FractionalWindowMessage(t *testing.T) {
	limiter := new(mocks.Limiter)
	limiter.On("Evaluate", mock.Anything, "k1", fixedNow).Return(ratelimit.Result{Allowed: false})
	limiter.On("Max").Return(5)
	limiter.On("WindowSeconds").Return(90)

	resp, err := newRateLimitApp(limiter, "k1").Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, "The limit of 5 requests per 1.5 minutes has been exceeded.", decodeBody(t, resp.Body)["message"])
}

func TestRateLimitMiddleware_NoCredential(t *testing.T) {
	limiter := new(mocks.Limiter)
	limiter.On("Evaluate", mock.Anything, "", fixedNow).Return(ratelimit.Result{Allowed: true, Skipped: true})

	resp, err := newRateLimitApp(limiter, "").Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(common.RateLimitLimitHeader))
	limiter.AssertNotCalled(t, "Max")
}

func TestRateLimitMiddleware_StoreUnavailable(t *testing.T) {
	limiter := new(mocks.Limiter)
	limiter.On("Evaluate", mock.Anything, "k1", fixedNow).
		Return(ratelimit.Result{Allowed: true, Degraded: errors.New("dial tcp: refused")})

	resp, err := newRateLimitApp(limiter, "k1").Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(common.RateLimitRemainingHeader))
}
