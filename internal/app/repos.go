package app

import (
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/repos"
)

type Repos struct {
	User        repos.UserRepo
	UserToken   repos.UserTokenRepo
	Module      repos.ModuleRepo
	Chapter     repos.ChapterRepo
	Quiz        repos.QuizRepo
	NeoverseLog repos.NeoverseLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		UserToken:   repos.NewUserTokenRepo(db, log),
		Module:      repos.NewModuleRepo(db, log),
		Chapter:     repos.NewChapterRepo(db, log),
		Quiz:        repos.NewQuizRepo(db, log),
		NeoverseLog: repos.NewNeoverseLogRepo(db, log),
	}
}
