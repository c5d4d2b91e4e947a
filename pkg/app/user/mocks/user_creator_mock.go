package mocks

import (
	"context"

	domainUser "github.com/NeuralTrust/TaskAPI/pkg/domain/user"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/stretchr/testify/mock"
)

type Creator struct {
	mock.Mock
}

func (m *Creator) Create(ctx context.Context, req *request.CreateUserRequest) (*domainUser.WithAPIKey, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*domainUser.WithAPIKey)
	return u, args.Error(1)
}
