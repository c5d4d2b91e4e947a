package user

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	domainApiKey "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	apiKeyMocks "github.com/NeuralTrust/TaskAPI/pkg/domain/apikey/mocks"
	domainUser "github.com/NeuralTrust/TaskAPI/pkg/domain/user"
	userMocks "github.com/NeuralTrust/TaskAPI/pkg/domain/user/mocks"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var fixedUUID = uuid.MustParse("7c1cc1d7-34c2-4f0e-9c2f-3fdab0e2f241")

func TestGenerateAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), key)

	other, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestCreator_Create(t *testing.T) {
	users := new(userMocks.Repository)
	keys := new(apiKeyMocks.Repository)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domainUser.User) bool {
		return u.UserID == fixedUUID.String() && u.Name == "Aurora Labs"
	})).Return(nil).Once()
	keys.On("Create", mock.Anything, &domainApiKey.APIKey{Key: "k-123", UserID: fixedUUID.String()}).Return(nil).Once()

	c := NewCreator(quietLogger(), users, keys, &CreatorOpts{
		UuidProvider: func() uuid.UUID { return fixedUUID },
		KeyGenerator: func() (string, error) { return "k-123", nil },
	})
	out, err := c.Create(context.Background(), &request.CreateUserRequest{Name: "Aurora Labs"})

	require.NoError(t, err)
	assert.Equal(t, fixedUUID.String(), out.UserID)
	assert.Equal(t, "Aurora Labs", out.Name)
	assert.Equal(t, "k-123", out.APIKey)
	users.AssertExpectations(t)
	keys.AssertExpectations(t)
	users.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestCreator_Create_KeyFailureRollsBackUser(t *testing.T) {
	users := new(userMocks.Repository)
	keys := new(apiKeyMocks.Repository)

	users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	keys.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key")).Once()
	users.On("DeleteByUserID", mock.Anything, fixedUUID.String()).Return(nil).Once()

	c := NewCreator(quietLogger(), users, keys, &CreatorOpts{
		UuidProvider: func() uuid.UUID { return fixedUUID },
	})
	out, err := c.Create(context.Background(), &request.CreateUserRequest{Name: "x"})

	assert.Nil(t, out)
	assert.ErrorContains(t, err, "duplicate key")
	users.AssertExpectations(t)
}

func TestCreator_Create_UserFailure(t *testing.T) {
	users := new(userMocks.Repository)
	keys := new(apiKeyMocks.Repository)
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	c := NewCreator(quietLogger(), users, keys, nil)
	out, err := c.Create(context.Background(), &request.CreateUserRequest{Name: "x"})

	assert.Nil(t, out)
	assert.Error(t, err)
	keys.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}
