package routes

import (
	"github.com/gofiber/fiber/v2"

	"orderdash/handlers"
	"orderdash/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Dashboard Routes ---
	// Everything below requires a token once JWT_SECRET is configured.
	api.Use(middleware.JWTMiddleware)
	api.Post("/upload", handlers.HandleUpload)
	api.Get("/dashboard", handlers.HandleGetDashboard)
	api.Get("/profit-graph", handlers.HandleGetProfitGraph)
	api.Get("/filter/:subOrderNo", handlers.HandleFilterSubOrder)
	api.Get("/download", handlers.HandleDownloadReport)
	api.Post("/insights", handlers.HandleGetInsights)
}
