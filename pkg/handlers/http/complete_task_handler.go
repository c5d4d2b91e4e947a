package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/app/task"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const completeNotFoundMessage = "Task not found or you do not have permission to complete it."

type completeTaskHandler struct {
	logger      *logrus.Logger
	updater     task.Updater
	development bool
}

func NewCompleteTaskHandler(logger *logrus.Logger, updater task.Updater, development bool) Handler {
	return &completeTaskHandler{
		logger:      logger,
		updater:     updater,
		development: development,
	}
}

// Handle @Summary Complete a task
// @Description Marks a task owned by the authenticated user as done
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Success 200 {object} task.Task
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Router /api/tasks/{id}/complete [patch]
func (h *completeTaskHandler) Handle(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return response.Error(c, fiber.StatusNotFound, completeNotFoundMessage)
	}

	completed, err := h.updater.Complete(c.UserContext(), id, ownerID(c))
	if err != nil {
		if domain.IsNotFoundError(err) {
			return response.Error(c, fiber.StatusNotFound, completeNotFoundMessage)
		}
		h.logger.WithError(err).Error("failed to complete task")
		return response.Internal(c, err, h.development)
	}
	return c.Status(fiber.StatusOK).JSON(completed)
}
