package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	// Health check routes
	deps.HealthHandler.RegisterRoutes(app)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Todo CRUD routes
	todos := app.Group("/todos")
	if deps.RateLimitMiddleware != nil {
		todos.Use(deps.RateLimitMiddleware.Handler())
	}
	{
		todos.Get("/", deps.TodosHandler.ListTodos)
		todos.Post("/", deps.TodosHandler.CreateTodo)
		todos.Get("/:id", deps.TodosHandler.GetTodo)
		todos.Patch("/:id", deps.TodosHandler.UpdateTodo)
		todos.Delete("/:id", deps.TodosHandler.DeleteTodo)
	}
}
