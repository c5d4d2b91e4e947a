package task

import (
	"context"

	"github.com/NeuralTrust/TaskAPI/pkg/app/taskcache"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Updater --dir=. --output=./mocks --filename=task_updater_mock.go --case=underscore --with-expecter
type Updater interface {
	Update(ctx context.Context, id uuid.UUID, userID string, update domainTask.Update) (*domainTask.Task, error)
	Complete(ctx context.Context, id uuid.UUID, userID string) (*domainTask.Task, error)
}

type updater struct {
	logger *logrus.Logger
	repo   domainTask.Repository
	cache  taskcache.Cache
}

func NewUpdater(logger *logrus.Logger, repo domainTask.Repository, cache taskcache.Cache) Updater {
	return &updater{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

func (u *updater) Update(
	ctx context.Context,
	id uuid.UUID,
	userID string,
	update domainTask.Update,
) (*domainTask.Task, error) {
	if update.IsEmpty() {
		return nil, domain.ErrNoUpdateFields
	}
	updated, err := u.repo.Update(ctx, id, userID, update)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			u.logger.WithError(err).WithField("task_id", id.String()).Error("failed to update task")
		}
		return nil, err
	}

	u.cache.Invalidate(ctx, userID)
	return updated, nil
}

func (u *updater) Complete(ctx context.Context, id uuid.UUID, userID string) (*domainTask.Task, error) {
	done := true
	return u.Update(ctx, id, userID, domainTask.Update{Done: &done})
}
