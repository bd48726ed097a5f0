package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"orderdash/config"
	"orderdash/database"
	"orderdash/handlers"
	"orderdash/routes"
	"orderdash/store"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// JWT_SECRET is optional: the dashboard runs in open mode without it.
	config.AppConfig.JWTSecret = os.Getenv("JWT_SECRET")
	config.AppConfig.AdminEmail = os.Getenv("ADMIN_EMAIL")
	config.AppConfig.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Initialize database and the snapshot store
	database.InitDB(databaseURL)
	defer database.CloseDB()

	snapshots, err := store.NewPostgresStore(context.Background(), database.GetDB())
	if err != nil {
		log.Fatalf("Unable to initialize snapshot store: %v", err)
	}
	handlers.Snapshots = snapshots

	// Order exports run to tens of thousands of rows; allow large uploads.
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
