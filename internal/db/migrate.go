package db

import (
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.User{},
		&types.UserToken{},

		// Curriculum containment: module -> chapter -> quiz
		&types.Module{},
		&types.Chapter{},
		&types.Quiz{},

		// Telemetry
		&types.NeoverseLog{},
	)
}
