package task

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/app/taskcache"
	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=task_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, userID string, req *request.CreateTaskRequest) (*domainTask.Task, error)
}

type creator struct {
	logger *logrus.Logger
	repo   domainTask.Repository
	cache  taskcache.Cache
}

func NewCreator(logger *logrus.Logger, repo domainTask.Repository, cache taskcache.Cache) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

func (c *creator) Create(ctx context.Context, userID string, req *request.CreateTaskRequest) (*domainTask.Task, error) {
	entity := &domainTask.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := c.repo.Create(ctx, entity); err != nil {
		c.logger.WithError(err).WithField("user_id", userID).Error("failed to create task")
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	c.cache.Invalidate(ctx, userID)
	return entity, nil
}
