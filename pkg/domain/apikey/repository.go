package apikey

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=apikey_repository_mock.go --case=underscore
type Repository interface {
	Create(ctx context.Context, key *APIKey) error
	GetByKey(ctx context.Context, key string) (*APIKey, error)
	DeleteAll(ctx context.Context) error
}
