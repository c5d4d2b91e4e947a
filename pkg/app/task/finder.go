package task

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/app/taskcache"
	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=task_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	List(ctx context.Context, userID string, query domainTask.ListQuery) (*domainTask.Page, error)
}

type finder struct {
	logger *logrus.Logger
	repo   domainTask.Repository
	cache  taskcache.Cache
}

func NewFinder(logger *logrus.Logger, repo domainTask.Repository, cache taskcache.Cache) Finder {
	return &finder{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

// List serves the page from the cache when possible. On a miss the page and
// the total are queried concurrently and the result is cached under the same
// filters.
func (f *finder) List(ctx context.Context, userID string, query domainTask.ListQuery) (*domainTask.Page, error) {
	query = query.Normalize()
	filters := taskcache.ListFilters(query)

	if cached, ok := f.cache.Get(ctx, userID, filters); ok {
		return cached, nil
	}

	var (
		tasks []domainTask.Task
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = f.repo.List(gctx, userID, query)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = f.repo.Count(gctx, userID, query.Done)
		return err
	})
	if err := g.Wait(); err != nil {
		f.logger.WithError(err).WithField("user_id", userID).Error("failed to list tasks")
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	page := domainTask.NewPage(tasks, query, total)
	f.cache.Set(ctx, userID, page, filters)
	return page, nil
}
