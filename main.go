package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"app/agent"
	"app/config"
	"app/handlers"
	"app/middleware"
	"app/routes"
	"app/salesapi"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.AppConfig.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, answers will use the deterministic fallback")
	}

	// Wire the orders gateway and the explanation agent
	cache := salesapi.NewCache(config.AppConfig.OrdersCacheTTL)
	ordersClient := salesapi.NewClient(config.AppConfig.OrdersAPIURL, cache)
	explainer := agent.NewExplainer(config.AppConfig.GeminiAPIKey)
	handlers.Setup(ordersClient, explainer)

	middleware.InitSessionStore()

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

// errorHandler keeps client errors as-is and wraps everything else in
// the standard failure payload.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		return c.Status(code).JSON(fiber.Map{"error": "Something went wrong: " + err.Error()})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
