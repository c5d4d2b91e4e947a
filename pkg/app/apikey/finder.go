package apikey

import (
	"context"

	domainErrors "github.com/NeuralTrust/TaskAPI/pkg/domain"
	domain "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=apikey_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, key string) (*domain.APIKey, error)
}

type finder struct {
	repo   domain.Repository
	logger *logrus.Logger
}

func NewFinder(repository domain.Repository, logger *logrus.Logger) Finder {
	return &finder{
		repo:   repository,
		logger: logger,
	}
}

// Find looks the key up by equality. Unknown keys and rows without an owner
// yield a not-found error.
func (f *finder) Find(ctx context.Context, key string) (*domain.APIKey, error) {
	entity, err := f.repo.GetByKey(ctx, key)
	if err != nil {
		if !domainErrors.IsNotFoundError(err) {
			f.logger.WithError(err).Error("failed to fetch apikey from repository")
		}
		return nil, err
	}
	if !entity.IsValid() {
		return nil, domainErrors.NewNotFoundError("api key", "")
	}
	return entity, nil
}
