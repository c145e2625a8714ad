// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportmate-api/config"
	"sportmate-api/controllers"
	"sportmate-api/middleware"
	"sportmate-api/repositories"
	"sportmate-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories and services
	userRepo := repositories.NewUserRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	accountService := services.NewAccountService(userRepo)
	eventService := services.NewEventService(eventRepo)

	// Controllers
	authController := controllers.NewAuthController(accountService, cfg.JWTSecret)
	userController := controllers.NewUserController(userRepo)
	eventController := controllers.NewEventController(eventService, userRepo)
	sportController := controllers.NewSportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
		}

		// Sport catalog
		protected.GET("/sports", sportController.GetSports)

		// Event routes
		events := protected.Group("/events")
		{
			events.GET("/", eventController.GetEvents)
			events.GET("/expired", eventController.GetExpiredEvents)
			events.GET("/created", eventController.GetCreatedEvents)
			events.GET("/joined", eventController.GetJoinedEvents)
			events.POST("/", eventController.CreateEvent)
			events.GET("/:id", eventController.GetEvent)
			events.POST("/:id/join", eventController.JoinEvent)
			events.DELETE("/:id/leave", eventController.LeaveEvent)
			events.POST("/:id/cancel", eventController.CancelEvent)
			events.POST("/:id/reactivate", eventController.ReactivateEvent)
			events.POST("/:id/participants/:userId/accept", eventController.AcceptParticipant)
			events.DELETE("/:id/participants/:userId", eventController.RejectParticipant)
		}
	}
}

// SetupCORS allows the mobile client to reach the API from any origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
