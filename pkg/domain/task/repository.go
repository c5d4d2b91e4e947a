package task

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=task_repository_mock.go --case=underscore
type Repository interface {
	Create(ctx context.Context, task *Task) error
	// List returns one page of the owner's tasks, newest first.
	List(ctx context.Context, userID string, query ListQuery) ([]Task, error)
	Count(ctx context.Context, userID string, done *bool) (int64, error)
	// Update applies the partial update to a task owned by userID and
	// returns the stored row. It returns a not-found error when nothing matched.
	Update(ctx context.Context, id uuid.UUID, userID string, update Update) (*Task, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
	DeleteAll(ctx context.Context) error
}
