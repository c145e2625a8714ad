// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"sportmate-api/config"
	"sportmate-api/database"
	"sportmate-api/middleware"
	"sportmate-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the sport catalog
	if err := database.SeedSports(db); err != nil {
		log.Printf("Warning: Failed to seed sports: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Security headers and request logging
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())

	// Rate limiting
	router.Use(middleware.RateLimit(cfg.RequestsPerMinute, cfg.RateLimitBurst))

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Start server
	log.Printf("Starting Sportmate API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
