package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/app/task"
	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const deleteNotFoundMessage = "Task not found or you do not have permission to delete it."

type deleteTaskHandler struct {
	logger      *logrus.Logger
	deleter     task.Deleter
	development bool
}

func NewDeleteTaskHandler(logger *logrus.Logger, deleter task.Deleter, development bool) Handler {
	return &deleteTaskHandler{
		logger:      logger,
		deleter:     deleter,
		development: development,
	}
}

// Handle @Summary Delete a task
// @Description Removes a task owned by the authenticated user
// @Tags Tasks
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Success 204 "Task deleted successfully"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Router /api/tasks/{id} [delete]
func (h *deleteTaskHandler) Handle(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return response.Error(c, fiber.StatusNotFound, deleteNotFoundMessage)
	}

	if err := h.deleter.Delete(c.UserContext(), id, ownerID(c)); err != nil {
		if domain.IsNotFoundError(err) {
			return response.Error(c, fiber.StatusNotFound, deleteNotFoundMessage)
		}
		h.logger.WithError(err).Error("failed to delete task")
		return response.Internal(c, err, h.development)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
