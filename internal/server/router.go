package server

import (
	"github.com/gin-gonic/gin"

	"github.com/neoverse/academy-backend/internal/handlers"
	"github.com/neoverse/academy-backend/internal/middleware"
)

type RouterConfig struct {
	SessionSecretKey string

	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	UserHandler    *handlers.UserHandler
	QuizHandler    *handlers.QuizHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.Session(cfg.SessionSecretKey))

	router.GET("/healthcheck", handlers.HealthCheck)

	user := router.Group("/user")
	{
		// Public
		if cfg.AuthHandler != nil {
			user.POST("/signup", cfg.AuthHandler.Signup)
			user.POST("/login", cfg.AuthHandler.Login)
			user.GET("/google/login", cfg.AuthHandler.GoogleLogin)
			user.GET("/google/auth", cfg.AuthHandler.GoogleCallback)
		}

		// Protected
		protected := user.Group("/")
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}
		if cfg.AuthHandler != nil {
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}
		if cfg.UserHandler != nil {
			protected.GET("/", cfg.UserHandler.List)
			protected.PATCH("/update-user/:id", cfg.UserHandler.Update)
			protected.DELETE("/delete-user/:id", cfg.UserHandler.Delete)
		}
	}

	quiz := router.Group("/quiz")
	{
		if cfg.QuizHandler != nil {
			quiz.GET("/:chapter_id", cfg.QuizHandler.ListByChapter)
			quiz.POST("/validate/:quiz_id", cfg.QuizHandler.Validate)
		}
	}

	return router
}
