package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/app/task"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createTaskHandler struct {
	logger      *logrus.Logger
	creator     task.Creator
	development bool
}

func NewCreateTaskHandler(logger *logrus.Logger, creator task.Creator, development bool) Handler {
	return &createTaskHandler{
		logger:      logger,
		creator:     creator,
		development: development,
	}
}

// Handle @Summary Create a task
// @Description Creates a task owned by the authenticated user
// @Tags Tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param task body request.CreateTaskRequest true "Task data"
// @Success 201 {object} task.Task
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API key"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/tasks [post]
func (h *createTaskHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, invalidBodyMessage)
	}
	if err := req.Validate(); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}

	created, err := h.creator.Create(c.UserContext(), ownerID(c), &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to create task")
		return response.Internal(c, err, h.development)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
