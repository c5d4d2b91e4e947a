package mocks

import (
	"context"

	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Creator struct {
	mock.Mock
}

func (m *Creator) Create(ctx context.Context, userID string, req *request.CreateTaskRequest) (*domainTask.Task, error) {
	args := m.Called(ctx, userID, req)
	t, _ := args.Get(0).(*domainTask.Task)
	return t, args.Error(1)
}

type Finder struct {
	mock.Mock
}

func (m *Finder) List(ctx context.Context, userID string, query domainTask.ListQuery) (*domainTask.Page, error) {
	args := m.Called(ctx, userID, query)
	page, _ := args.Get(0).(*domainTask.Page)
	return page, args.Error(1)
}

type Updater struct {
	mock.Mock
}

func (m *Updater) Update(ctx context.Context, id uuid.UUID, userID string, update domainTask.Update) (*domainTask.Task, error) {
	args := m.Called(ctx, id, userID, update)
	t, _ := args.Get(0).(*domainTask.Task)
	return t, args.Error(1)
}

func (m *Updater) Complete(ctx context.Context, id uuid.UUID, userID string) (*domainTask.Task, error) {
	args := m.Called(ctx, id, userID)
	t, _ := args.Get(0).(*domainTask.Task)
	return t, args.Error(1)
}

type Deleter struct {
	mock.Mock
}

func (m *Deleter) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
