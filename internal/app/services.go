package app

import (
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	GoogleAuth services.GoogleAuthService
	User       services.UserService
	Quiz       services.QuizService
	Seed       services.SeedService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	authService := services.NewAuthService(
		db,
		log,
		reposet.User,
		reposet.UserToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	googleAuthService := services.NewGoogleAuthService(
		db,
		log,
		reposet.User,
		authService,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	return Services{
		Auth:       authService,
		GoogleAuth: googleAuthService,
		User:       services.NewUserService(db, log, reposet.User, reposet.UserToken),
		Quiz:       services.NewQuizService(db, log, reposet.Quiz),
		Seed:       services.NewSeedService(db, log, reposet.Module, reposet.Chapter, reposet.Quiz, reposet.NeoverseLog),
	}
}
