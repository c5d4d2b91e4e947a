package router

import "github.com/gofiber/fiber/v2"

const RouteNotFoundMessage = "The requested route was not found on the server."

type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}
