package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// System
	HealthHandler     Handler
	GetVersionHandler Handler

	// User
	CreateUserHandler Handler

	// Task
	CreateTaskHandler   Handler
	ListTasksHandler    Handler
	UpdateTaskHandler   Handler
	CompleteTaskHandler Handler
	DeleteTaskHandler   Handler
}

const invalidBodyMessage = "Invalid request body."

func ownerID(c *fiber.Ctx) string {
	id, _ := c.Locals(common.UserIDContextKey).(string)
	return id
}

// taskID reports false for ids that cannot name a stored task.
func taskID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
