package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/", handlers.HandleIndex)
	app.Post("/ask", handlers.HandleAsk)

	api := app.Group("/api/v1")
	api.Get("/health", handlers.HandleHealth)
}
