package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/couchtour/phishstats/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, story *handlers.StoryHandler, health *handlers.HealthHandler) {
	// Liveness probe for monitoring
	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Post("/generate-story", story.Generate)
}
