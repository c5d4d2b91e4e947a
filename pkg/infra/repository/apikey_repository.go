package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) apikey.Repository {
	return &ApiKeyRepository{
		db: db,
	}
}

func (r *ApiKeyRepository) Create(ctx context.Context, key *apikey.APIKey) error {
	if key.ID == uuid.Nil {
		key.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

func (r *ApiKeyRepository) GetByKey(ctx context.Context, key string) (*apikey.APIKey, error) {
	entity := new(apikey.APIKey)
	err := r.db.WithContext(ctx).Where("key = ?", key).First(entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("api key", "")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return entity, nil
}

func (r *ApiKeyRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&apikey.APIKey{}).Error
}
