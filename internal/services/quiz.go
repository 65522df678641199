package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/repos"
	"github.com/neoverse/academy-backend/internal/types"
)

// NoHintAvailable is returned for an incorrect answer whose label has no
// stored hint.
const NoHintAvailable = "No hint available."

type ValidationResult struct {
	Result string `json:"result"`
	Hint   string `json:"hint,omitempty"`
}

type QuizService interface {
	// ListByChapter returns the quizzes of a chapter with the answer key and
	// hints stripped. A chapter with zero quizzes is reported as not found;
	// callers cannot distinguish an empty chapter from a missing one.
	ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]types.QuizView, error)
	Validate(ctx context.Context, quizID uuid.UUID, userAnswer string) (*ValidationResult, error)
}

type quizService struct {
	db       *gorm.DB
	log      *logger.Logger
	quizRepo repos.QuizRepo
}

func NewQuizService(db *gorm.DB, log *logger.Logger, quizRepo repos.QuizRepo) QuizService {
	return &quizService{
		db:       db,
		log:      log.With("service", "QuizService"),
		quizRepo: quizRepo,
	}
}

func (qs *quizService) ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]types.QuizView, error) {
	quizzes, err := qs.quizRepo.GetByChapterIDs(ctx, nil, []uuid.UUID{chapterID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quizzes: %w", err)
	}
	if len(quizzes) == 0 {
		return nil, fmt.Errorf("%w: no quizzes found for chapter %s", ErrNotFound, chapterID)
	}
	views := make([]types.QuizView, 0, len(quizzes))
	for _, q := range quizzes {
		views = append(views, q.View())
	}
	return views, nil
}

func (qs *quizService) Validate(ctx context.Context, quizID uuid.UUID, userAnswer string) (*ValidationResult, error) {
	quizzes, err := qs.quizRepo.GetByIDs(ctx, nil, []uuid.UUID{quizID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quiz: %w", err)
	}
	if len(quizzes) == 0 {
		return nil, fmt.Errorf("%w: quiz with id %s not found", ErrNotFound, quizID)
	}
	quiz := quizzes[0]

	if strings.EqualFold(quiz.CorrectOption, userAnswer) {
		return &ValidationResult{Result: "correct"}, nil
	}
	return &ValidationResult{
		Result: "incorrect",
		Hint:   hintForLabel(quiz, userAnswer),
	}, nil
}

// hintForLabel is a closed mapping from option label to hint field. Labels
// outside {a,b,c} get the fixed fallback rather than an error.
func hintForLabel(quiz *types.Quiz, label string) string {
	switch strings.ToLower(label) {
	case "a":
		return quiz.HintA
	case "b":
		return quiz.HintB
	case "c":
		return quiz.HintC
	default:
		return NoHintAvailable
	}
}
