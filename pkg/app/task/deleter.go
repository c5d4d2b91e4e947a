package task

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/app/taskcache"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=task_deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

type deleter struct {
	logger *logrus.Logger
	repo   domainTask.Repository
	cache  taskcache.Cache
}

func NewDeleter(logger *logrus.Logger, repo domainTask.Repository, cache taskcache.Cache) Deleter {
	return &deleter{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

func (d *deleter) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := d.repo.Delete(ctx, id, userID); err != nil {
		if !domain.IsNotFoundError(err) {
			d.logger.WithError(err).WithField("task_id", id.String()).Error("failed to delete task")
		}
		return err
	}

	d.cache.Invalidate(ctx, userID)
	return nil
}
