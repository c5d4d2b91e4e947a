package mocks

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/app/taskcache"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (m *Cache) Get(ctx context.Context, ownerID string, filters taskcache.Filters) (*task.Page, bool) {
	args := m.Called(ctx, ownerID, filters)
	page, _ := args.Get(0).(*task.Page)
	return page, args.Bool(1)
}

func (m *Cache) Set(ctx context.Context, ownerID string, page *task.Page, filters taskcache.Filters) {
	m.Called(ctx, ownerID, page, filters)
}

func (m *Cache) Invalidate(ctx context.Context, ownerID string) {
	m.Called(ctx, ownerID)
}
