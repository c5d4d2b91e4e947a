package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	domainApiKey "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	domainUser "github.com/NeuralTrust/TaskAPI/pkg/domain/user"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const apiKeyBytes = 16

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=user_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*domainUser.WithAPIKey, error)
}

type CreatorOpts struct {
	UuidProvider func() uuid.UUID
	KeyGenerator func() (string, error)
}

type creator struct {
	logger       *logrus.Logger
	userRepo     domainUser.Repository
	apiKeyRepo   domainApiKey.Repository
	uuidProvider func() uuid.UUID
	keyGenerator func() (string, error)
}

func NewCreator(
	logger *logrus.Logger,
	userRepo domainUser.Repository,
	apiKeyRepo domainApiKey.Repository,
	opts *CreatorOpts,
) Creator {
	c := &creator{
		logger:       logger,
		userRepo:     userRepo,
		apiKeyRepo:   apiKeyRepo,
		uuidProvider: uuid.New,
		keyGenerator: GenerateAPIKey,
	}
	if opts != nil && opts.UuidProvider != nil {
		c.uuidProvider = opts.UuidProvider
	}
	if opts != nil && opts.KeyGenerator != nil {
		c.keyGenerator = opts.KeyGenerator
	}
	return c
}

// GenerateAPIKey returns 16 random bytes as 32 lowercase hex characters.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Create stores the user and its API key. If the key cannot be stored the
// user row is removed again.
func (c *creator) Create(ctx context.Context, req *request.CreateUserRequest) (*domainUser.WithAPIKey, error) {
	userID := c.uuidProvider().String()
	entity := &domainUser.User{
		UserID: userID,
		Name:   req.Name,
	}
	if err := c.userRepo.Create(ctx, entity); err != nil {
		c.logger.WithError(err).Error("failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	key, err := c.createKey(ctx, userID)
	if err != nil {
		c.logger.WithError(err).WithField("user_id", userID).Error("failed to create api key, rolling back user")
		if delErr := c.userRepo.DeleteByUserID(ctx, userID); delErr != nil {
			c.logger.WithError(delErr).WithField("user_id", userID).Error("failed to roll back user")
		}
		return nil, err
	}

	return &domainUser.WithAPIKey{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Name:      entity.Name,
		APIKey:    key,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}, nil
}

func (c *creator) createKey(ctx context.Context, userID string) (string, error) {
	key, err := c.keyGenerator()
	if err != nil {
		return "", err
	}
	if err := c.apiKeyRepo.Create(ctx, &domainApiKey.APIKey{Key: key, UserID: userID}); err != nil {
		return "", fmt.Errorf("error creating API key: %w", err)
	}
	return key, nil
}
