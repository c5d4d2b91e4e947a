package seed

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	apiKeyMocks "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey/mocks"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	taskMocks "github.com/NeuralTrust/TaskAPI/pkg/domain/task/mocks"
	userMocks "github.com/NeuralTrust/TaskAPI/pkg/domain/user/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSeeder_Run(t *testing.T) {
	users := new(userMocks.Repository)
	keys := new(apiKeyMocks.Repository)
	tasks := new(taskMocks.Repository)

	tasks.On("DeleteAll", mock.Anything).Return(nil).Once()
	keys.On("DeleteAll", mock.Anything).Return(nil).Once()
	users.On("DeleteAll", mock.Anything).Return(nil).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(nil).Times(3)
	for _, account := range Accounts {
		keys.On("Create", mock.Anything, &apikey.APIKey{Key: account.Key, UserID: account.UserID}).Return(nil).Once()
	}
	tasks.On("Create", mock.Anything, mock.MatchedBy(func(t *task.Task) bool {
		return t.Title == "Task 1 for Aurora Labs" && *t.Description == "This is a sample task for Aurora Labs."
	})).Return(nil).Once()
	tasks.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()

	err := NewSeeder(quietLogger(), users, keys, tasks).Run(context.Background())

	assert.NoError(t, err)
	users.AssertExpectations(t)
	keys.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

func TestSeeder_Run_StopsOnError(t *testing.T) {
	users := new(userMocks.Repository)
	keys := new(apiKeyMocks.Repository)
	tasks := new(taskMocks.Repository)

	tasks.On("DeleteAll", mock.Anything).Return(errors.New("locked")).Once()

	err := NewSeeder(quietLogger(), users, keys, tasks).Run(context.Background())

	assert.ErrorContains(t, err, "clear tasks")
	keys.AssertNotCalled(t, "DeleteAll", mock.Anything)
}
