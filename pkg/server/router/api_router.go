package router

import (
	"errors"

	_ "github.com/NeuralTrust/TaskAPI/docs"
	handlers "github.com/NeuralTrust/TaskAPI/pkg/handlers/http"
	"github.com/NeuralTrust/TaskAPI/pkg/handlers/http/response"
	"github.com/NeuralTrust/TaskAPI/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var ErrInvalidTransport = errors.New("invalid router transport")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

// BuildRoutes mounts the API. The rate limiter runs on every /api route but
// only task routes carry a credential, because auth runs ahead of it there.
func (r *apiRouter) BuildRoutes(app *fiber.App) error {
	if r.middlewareTransport == nil || r.handlerTransport == nil {
		return ErrInvalidTransport
	}
	m := r.middlewareTransport
	h := r.handlerTransport

	app.Use(
		m.PanicRecoverMiddleware.Middleware(),
		m.RequestLogMiddleware.Middleware(),
		m.MetricsMiddleware.Middleware(),
		m.CORSMiddleware.Middleware(),
	)

	rateLimit := m.RateLimitMiddleware.Middleware()

	api := app.Group("/api")
	{
		api.Get("/docs/*", swagger.HandlerDefault)

		api.Get("/health", rateLimit, h.HealthHandler.Handle)
		api.Get("/version", rateLimit, h.GetVersionHandler.Handle)

		users := api.Group("/users", rateLimit)
		{
			users.Post("", h.CreateUserHandler.Handle)
		}

		tasks := api.Group("/tasks", m.AuthMiddleware.Middleware(), rateLimit)
		{
			tasks.Post("", h.CreateTaskHandler.Handle)
			tasks.Get("", h.ListTasksHandler.Handle)
			tasks.Put("/:id", h.UpdateTaskHandler.Handle)
			tasks.Patch("/:id/complete", h.CompleteTaskHandler.Handle)
			tasks.Delete("/:id", h.DeleteTaskHandler.Handle)
		}
	}

	app.Use(func(c *fiber.Ctx) error {
		return response.Error(c, fiber.StatusNotFound, RouteNotFoundMessage)
	})
	return nil
}
