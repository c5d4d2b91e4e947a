package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/app/task"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listTasksHandler struct {
	logger      *logrus.Logger
	finder      task.Finder
	development bool
}

func NewListTasksHandler(logger *logrus.Logger, finder task.Finder, development bool) Handler {
	return &listTasksHandler{
		logger:      logger,
		finder:      finder,
		development: development,
	}
}

// Handle @Summary List tasks
// @Description Lists the authenticated user's tasks, newest first
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param done query bool false "Filter by completion"
// @Success 200 {object} task.Page
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API key"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/tasks [get]
func (h *listTasksHandler) Handle(c *fiber.Ctx) error {
	req := request.ListTasksRequest{
		Page:  c.Query("page"),
		Limit: c.Query("limit"),
		Done:  c.Query("done"),
	}
	query, err := req.ToQuery()
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}

	page, err := h.finder.List(c.UserContext(), ownerID(c), query)
	if err != nil {
		h.logger.WithError(err).Error("failed to list tasks")
		return response.Internal(c, err, h.development)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}
