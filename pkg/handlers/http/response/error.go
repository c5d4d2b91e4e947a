package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const InternalErrorMessage = "An internal error occurred."

// Error writes {"error": <status text>, "message": message}.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   utils.StatusMessage(status),
		"message": message,
	})
}

// Internal hides err.Error() outside development.
func Internal(c *fiber.Ctx, err error, development bool) error {
	message := InternalErrorMessage
	if development && err != nil {
		message = err.Error()
	}
	return Error(c, fiber.StatusInternalServerError, message)
}
