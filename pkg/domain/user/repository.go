package user

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=user_repository_mock.go --case=underscore
type Repository interface {
	Create(ctx context.Context, user *User) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteAll(ctx context.Context) error
}
