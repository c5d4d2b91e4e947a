package mocks

import (
	"context"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/app/ratelimit"
	"github.com/stretchr/testify/mock"
)

type Limiter struct {
	mock.Mock
}

func (m *Limiter) Evaluate(ctx context.Context, credential string, now time.Time) ratelimit.Result {
	args := m.Called(ctx, credential, now)
	return args.Get(0).(ratelimit.Result)
}

func (m *Limiter) Max() int {
	args := m.Called()
	return args.Int(0)
}

func (m *Limiter) WindowSeconds() int {
	args := m.Called()
	return args.Int(0)
}
