package types

import (
	"time"

	"github.com/google/uuid"
)

// Quiz stores the answer key and per-option hints alongside the question.
// CorrectOption is one of "A", "B", "C"; a hint is only surfaced when its
// option was chosen incorrectly, so the answer key and hints must never be
// serialized to quiz listings (see QuizView).
type Quiz struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ChapterID     uuid.UUID `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter       *Chapter  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ChapterID;references:ID" json:"chapter,omitempty"`
	Question      string    `gorm:"not null;column:question" json:"question"`
	OptionA       string    `gorm:"not null;column:option_a" json:"option_a"`
	OptionB       string    `gorm:"not null;column:option_b" json:"option_b"`
	OptionC       string    `gorm:"not null;column:option_c" json:"option_c"`
	CorrectOption string    `gorm:"not null;column:correct_option" json:"-"`
	HintA         string    `gorm:"column:hint_a" json:"-"`
	HintB         string    `gorm:"column:hint_b" json:"-"`
	HintC         string    `gorm:"column:hint_c" json:"-"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Quiz) TableName() string { return "quiz" }

// QuizView is the requester-facing shape: question and options only.
type QuizView struct {
	ID        uuid.UUID `json:"id"`
	ChapterID uuid.UUID `json:"chapter_id"`
	Question  string    `json:"question"`
	OptionA   string    `json:"option_a"`
	OptionB   string    `json:"option_b"`
	OptionC   string    `json:"option_c"`
}

func (q *Quiz) View() QuizView {
	return QuizView{
		ID:        q.ID,
		ChapterID: q.ChapterID,
		Question:  q.Question,
		OptionA:   q.OptionA,
		OptionB:   q.OptionB,
		OptionC:   q.OptionC,
	}
}
