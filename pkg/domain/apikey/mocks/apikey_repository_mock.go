package mocks

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, key *apikey.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Repository) GetByKey(ctx context.Context, key string) (*apikey.APIKey, error) {
	args := m.Called(ctx, key)
	k, _ := args.Get(0).(*apikey.APIKey)
	return k, args.Error(1)
}

func (m *Repository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
