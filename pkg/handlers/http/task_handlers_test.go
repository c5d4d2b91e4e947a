package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	taskMocks "github.com/NeuralTrust/TaskAPI/pkg/app/task/mocks"
	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	domainTask "github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-1"

// newTaskApp mounts h behind a stub that plays the auth middleware's part.
func newTaskApp(method, path string, h Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserIDContextKey, testOwner)
		return c.Next()
	})
	app.Add(method, path, h.Handle)
	return app
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func readBody(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestCreateTaskHandler_Created(t *testing.T) {
	creator := new(taskMocks.Creator)
	created := &domainTask.Task{ID: uuid.New(), UserID: testOwner, Title: "Buy milk"}
	creator.On("Create", mock.Anything, testOwner, mock.MatchedBy(func(r *request.CreateTaskRequest) bool {
		return r.Title == "Buy milk"
	})).Return(created, nil)

	app := newTaskApp(fiber.MethodPost, "/api/tasks", NewCreateTaskHandler(logrus.New(), creator, false))
	req := httptest.NewRequest(fiber.MethodPost, "/api/tasks", jsonBody(t, map[string]string{"title": "  Buy milk  "}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := readBody(t, resp.Body)
	assert.Equal(t, "Buy milk", body["title"])
	assert.Equal(t, false, body["done"])
	creator.AssertExpectations(t)
}

func TestCreateTaskHandler_ValidationError(t *testing.T) {
	creator := new(taskMocks.Creator)
	app := newTaskApp(fiber.MethodPost, "/api/tasks", NewCreateTaskHandler(logrus.New(), creator, false))
	req := httptest.NewRequest(fiber.MethodPost, "/api/tasks", jsonBody(t, map[string]string{"title": "   "}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Bad Request", readBody(t, resp.Body)["error"])
	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTaskHandler_InternalErrorHidden(t *testing.T) {
	creator := new(taskMocks.Creator)
	creator.On("Create", mock.Anything, testOwner, mock.Anything).Return(nil, errors.New("pq: relation does not exist"))

	app := newTaskApp(fiber.MethodPost, "/api/tasks", NewCreateTaskHandler(logrus.New(), creator, false))
	req := httptest.NewRequest(fiber.MethodPost, "/api/tasks", jsonBody(t, map[string]string{"title": "x"}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "An internal error occurred.", readBody(t, resp.Body)["message"])
}

func TestListTasksHandler(t *testing.T) {
	done := true
	finder := new(taskMocks.Finder)
	finder.On("List", mock.Anything, testOwner, domainTask.ListQuery{Done: &done, Page: 2, Limit: 5}).
		Return(domainTask.NewPage(nil, domainTask.ListQuery{Page: 2, Limit: 5}, 7), nil)

	app := newTaskApp(fiber.MethodGet, "/api/tasks", NewListTasksHandler(logrus.New(), finder, false))
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/tasks?page=2&limit=5&done=true", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp.Body)
	assert.Equal(t, []interface{}{}, body["data"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["total_pages"])
	assert.Equal(t, true, meta["has_prev_page"])
	assert.Equal(t, false, meta["has_next_page"])
}

func TestListTasksHandler_InvalidDone(t *testing.T) {
	finder := new(taskMocks.Finder)
	app := newTaskApp(fiber.MethodGet, "/api/tasks", NewListTasksHandler(logrus.New(), finder, false))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/tasks?done=maybe", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	finder.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTaskHandler(t *testing.T) {
	id := uuid.New()
	title := "Renamed"

	tests := []struct {
		name       string
		path       string
		body       map[string]interface{}
		setup      func(u *taskMocks.Updater)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "updated",
			path: "/api/tasks/" + id.String(),
			body: map[string]interface{}{"title": title},
			setup: func(u *taskMocks.Updater) {
				u.On("Update", mock.Anything, id, testOwner, domainTask.Update{Title: &title}).
					Return(&domainTask.Task{ID: id, UserID: testOwner, Title: title}, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "empty body",
			path:       "/api/tasks/" + id.String(),
			body:       map[string]interface{}{},
			setup:      func(u *taskMocks.Updater) {},
			wantStatus: fiber.StatusBadRequest,
			wantMsg:    "No data provided for update.",
		},
		{
			name: "not owned",
			path: "/api/tasks/" + id.String(),
			body: map[string]interface{}{"done": true},
			setup: func(u *taskMocks.Updater) {
				u.On("Update", mock.Anything, id, testOwner, mock.Anything).
					Return(nil, domain.NewNotFoundError("task", id.String()))
			},
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "Task not found or you do not have permission to update it.",
		},
		{
			name:       "malformed id",
			path:       "/api/tasks/not-a-uuid",
			body:       map[string]interface{}{"done": true},
			setup:      func(u *taskMocks.Updater) {},
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "Task not found or you do not have permission to update it.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updater := new(taskMocks.Updater)
			tt.setup(updater)
			app := newTaskApp(fiber.MethodPut, "/api/tasks/:id", NewUpdateTaskHandler(logrus.New(), updater, false))

			req := httptest.NewRequest(fiber.MethodPut, tt.path, jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, readBody(t, resp.Body)["message"])
			}
			updater.AssertExpectations(t)
		})
	}
}

func TestCompleteTaskHandler(t *testing.T) {
	id := uuid.New()
	updater := new(taskMocks.Updater)
	updater.On("Complete", mock.Anything, id, testOwner).
		Return(&domainTask.Task{ID: id, UserID: testOwner, Title: "t", Done: true}, nil)

	app := newTaskApp(fiber.MethodPatch, "/api/tasks/:id/complete", NewCompleteTaskHandler(logrus.New(), updater, false))
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPatch, "/api/tasks/"+id.String()+"/complete", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, readBody(t, resp.Body)["done"])
}

func TestCompleteTaskHandler_NotFound(t *testing.T) {
	id := uuid.New()
	updater := new(taskMocks.Updater)
	updater.On("Complete", mock.Anything, id, testOwner).Return(nil, domain.NewNotFoundError("task", id.String()))

	app := newTaskApp(fiber.MethodPatch, "/api/tasks/:id/complete", NewCompleteTaskHandler(logrus.New(), updater, false))
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPatch, "/api/tasks/"+id.String()+"/complete", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or you do not have permission to complete it.", readBody(t, resp.Body)["message"])
}

func TestDeleteTaskHandler(t *testing.T) {
	id := uuid.New()
	missing := uuid.New()
	deleter := new(taskMocks.Deleter)
	deleter.On("Delete", mock.Anything, id, testOwner).Return(nil)
	deleter.On("Delete", mock.Anything, missing, testOwner).Return(domain.NewNotFoundError("task", missing.String()))

	app := newTaskApp(fiber.MethodDelete, "/api/tasks/:id", NewDeleteTaskHandler(logrus.New(), deleter, false))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/tasks/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/tasks/"+missing.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or you do not have permission to delete it.", readBody(t, resp.Body)["message"])
}
