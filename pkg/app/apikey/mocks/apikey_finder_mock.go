package mocks

import (
	"context"

	domain "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	"github.com/stretchr/testify/mock"
)

type Finder struct {
	mock.Mock
}

func (m *Finder) Find(ctx context.Context, key string) (*domain.APIKey, error) {
	args := m.Called(ctx, key)
	k, _ := args.Get(0).(*domain.APIKey)
	return k, args.Error(1)
}
