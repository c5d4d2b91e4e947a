package mocks

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/user"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *Repository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *Repository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
