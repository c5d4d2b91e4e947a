package mocks

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *Repository) List(ctx context.Context, userID string, query task.ListQuery) ([]task.Task, error) {
	args := m.Called(ctx, userID, query)
	tasks, _ := args.Get(0).([]task.Task)
	return tasks, args.Error(1)
}

func (m *Repository) Count(ctx context.Context, userID string, done *bool) (int64, error) {
	args := m.Called(ctx, userID, done)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) Update(ctx context.Context, id uuid.UUID, userID string, update task.Update) (*task.Task, error) {
	args := m.Called(ctx, id, userID, update)
	t, _ := args.Get(0).(*task.Task)
	return t, args.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *Repository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
