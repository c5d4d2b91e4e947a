package http

import (
	"github.com/NeuralTrust/TaskAPI/pkg/version"
	"github.com/gofiber/fiber/v2"
)

type getVersionHandler struct{}

func NewGetVersionHandler() Handler {
	return &getVersionHandler{}
}

// Handle @Summary Get TaskAPI Version
// @Description Returns the running build's version information
// @Tags System
// @Produce json
// @Success 200 {object} version.Info "Version information"
// @Router /api/version [get]
func (h *getVersionHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(version.GetInfo())
}
