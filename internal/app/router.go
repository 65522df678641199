package app

import (
	"github.com/gin-gonic/gin"

	"github.com/neoverse/academy-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		SessionSecretKey: cfg.SessionSecretKey,
		AuthHandler:      handlerset.Auth,
		AuthMiddleware:   middlewareset.Auth,
		UserHandler:      handlerset.User,
		QuizHandler:      handlerset.Quiz,
	})
}
