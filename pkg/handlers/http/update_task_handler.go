package http

import (
	"errors"

	"github.com/NeuralTrust/TaskAPI/pkg/app/task"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	noUpdateDataMessage   = "No data provided for update."
	updateNotFoundMessage = "Task not found or you do not have permission to update it."
)

type updateTaskHandler struct {
	logger      *logrus.Logger
	updater     task.Updater
	development bool
}

func NewUpdateTaskHandler(logger *logrus.Logger, updater task.Updater, development bool) Handler {
	return &updateTaskHandler{
		logger:      logger,
		updater:     updater,
		development: development,
	}
}

// Handle @Summary Update a task
// @Description Partially updates a task owned by the authenticated user
// @Tags Tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Param task body request.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} task.Task
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Router /api/tasks/{id} [put]
func (h *updateTaskHandler) Handle(c *fiber.Ctx) error {
	var req request.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, invalidBodyMessage)
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, domain.ErrNoUpdateFields) {
			return response.Error(c, fiber.StatusBadRequest, noUpdateDataMessage)
		}
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}

	id, ok := taskID(c)
	if !ok {
		return response.Error(c, fiber.StatusNotFound, updateNotFoundMessage)
	}

	updated, err := h.updater.Update(c.UserContext(), id, ownerID(c), req.ToUpdate())
	if err != nil {
		if domain.IsNotFoundError(err) {
			return response.Error(c, fiber.StatusNotFound, updateNotFoundMessage)
		}
		h.logger.WithError(err).Error("failed to update task")
		return response.Internal(c, err, h.development)
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}
