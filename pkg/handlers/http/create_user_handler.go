package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/app/user"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/request"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createUserHandler struct {
	logger      *logrus.Logger
	creator     user.Creator
	development bool
}

func NewCreateUserHandler(logger *logrus.Logger, creator user.Creator, development bool) Handler {
	return &createUserHandler{
		logger:      logger,
		creator:     creator,
		development: development,
	}
}

// Handle @Summary Create a user
// @Description Creates a user and returns it with its API key. The key is only shown once.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body request.CreateUserRequest true "User data"
// @Success 201 {object} user.WithAPIKey
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal error"
// @Router /api/users [post]
func (h *createUserHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, invalidBodyMessage)
	}
	if err := req.Validate(); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}

	created, err := h.creator.Create(c.UserContext(), &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to create user")
		return response.Internal(c, err, h.development)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
