package app

import (
	"github.com/neoverse/academy-backend/internal/handlers"
	"github.com/neoverse/academy-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth *handlers.AuthHandler
	User *handlers.UserHandler
	Quiz *handlers.QuizHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth: handlers.NewAuthHandler(log, serviceset.Auth, serviceset.GoogleAuth),
		User: handlers.NewUserHandler(serviceset.User),
		Quiz: handlers.NewQuizHandler(log, serviceset.Quiz),
	}
}
