package types

import (
	"time"

	"github.com/google/uuid"
)

type Chapter struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ModuleID  uuid.UUID `gorm:"type:uuid;not null;index" json:"module_id"`
	Module    *Module   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"module,omitempty"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	Quizzes   []Quiz    `gorm:"foreignKey:ChapterID" json:"quizzes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Chapter) TableName() string { return "chapter" }
