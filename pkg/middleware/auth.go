package middleware

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/app/apikey"
	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	missingKeyMessage = "API key is required. Please provide the x-api-key header."
	invalidKeyMessage = "Invalid API key."
	authErrorMessage  = "Error validating authentication."
)

type authMiddleware struct {
	logger    *logrus.Logger
	keyFinder apikey.Finder
}

func NewAuthMiddleware(logger *logrus.Logger, keyFinder apikey.Finder) Middleware {
	return &authMiddleware{
		logger:    logger,
		keyFinder: keyFinder,
	}
}

// Middleware resolves x-api-key to its owner and stores both the key and the
// owner's user id in locals and in the user context.
func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		apiKey := ctx.Get(common.ApiKeyHeader)
		if apiKey == "" {
			m.logger.Debug("no api key provided")
			return response.Error(ctx, fiber.StatusUnauthorized, missingKeyMessage)
		}

		key, err := m.keyFinder.Find(ctx.UserContext(), apiKey)
		if err != nil {
			if domain.IsNotFoundError(err) {
				m.logger.Debug("invalid api key")
				return response.Error(ctx, fiber.StatusUnauthorized, invalidKeyMessage)
			}
			m.logger.WithError(err).Error("error retrieving apikey")
			return response.Error(ctx, fiber.StatusInternalServerError, authErrorMessage)
		}

		ctx.Locals(common.ApiKeyContextKey, apiKey)
		ctx.Locals(common.UserIDContextKey, key.UserID)

		c := context.WithValue(ctx.UserContext(), common.ApiKeyContextKey, apiKey)
		c = context.WithValue(c, common.UserIDContextKey, key.UserID)
		ctx.SetUserContext(c)

		return ctx.Next()
	}
}
