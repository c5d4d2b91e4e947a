package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TaskAPI/pkg/app/apikey/mocks"
	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	domainApikey "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	"github.com/NeuralTrust/TaskAPI/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func newAuthApp(finder *mocks.Finder) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(logrus.New(), finder).Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		userID, _ := c.Locals(common.UserIDContextKey).(string)
		ctxUserID, _ := c.UserContext().Value(common.UserIDContextKey).(string)
		return c.JSON(fiber.Map{"user": userID, "ctx_user": ctxUserID})
	})
	return app
}

func TestAuthMiddleware_NoAPIKey(t *testing.T) {
	finder := new(mocks.Finder)
	app := newAuthApp(finder)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "API key is required. Please provide the x-api-key header.", body["message"])
	finder.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_InvalidAPIKey(t *testing.T) {
	finder := new(mocks.Finder)
	finder.On("Find", mock.Anything, "nope").Return(nil, domain.NewNotFoundError("api key", ""))
	app := newAuthApp(finder)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(common.ApiKeyHeader, "nope")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid API key.", decodeBody(t, resp.Body)["message"])
}

func TestAuthMiddleware_StoreError(t *testing.T) {
	finder := new(mocks.Finder)
	finder.On("Find", mock.Anything, "key").Return(nil, errors.New("connection refused"))
	app := newAuthApp(finder)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(common.ApiKeyHeader, "key")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Error validating authentication.", body["message"])
	assert.NotContains(t, body["message"], "connection refused")
}

func TestAuthMiddleware_ValidAPIKey(t *testing.T) {
	finder := new(mocks.Finder)
	finder.On("Find", mock.Anything, "abc123").
		Return(&domainApikey.APIKey{Key: "abc123", UserID: "u1"}, nil)
	app := newAuthApp(finder)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(common.ApiKeyHeader, "abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "u1", body["user"])
	assert.Equal(t, "u1", body["ctx_user"])
	finder.AssertExpectations(t)
}
