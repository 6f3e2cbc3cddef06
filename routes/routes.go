package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizzo/handlers"
	"quizzo/middleware"
	"quizzo/services"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	tokens *services.TokenService,
) {
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Quiz routes (bearer token required)
		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.AuthMiddleware(tokens))
		{
			quizzes.GET("", quizHandler.GetQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuizByID)
			quizzes.PUT("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
