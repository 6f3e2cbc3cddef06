package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"quizzo/config"
	"quizzo/handlers"
	"quizzo/middleware"
	"quizzo/models"
	"quizzo/routes"
	"quizzo/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.FillBlankAnswer{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(db, tokenService)
	quizService := services.NewQuizService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS(cfg.ClientOrigin))

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, tokenService)

	// Start server
	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
