package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/types"
)

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*types.Quiz
}

func newFakeQuizRepo(quizzes ...*types.Quiz) *fakeQuizRepo {
	r := &fakeQuizRepo{quizzes: make(map[uuid.UUID]*types.Quiz)}
	for _, q := range quizzes {
		r.quizzes[q.ID] = q
	}
	return r
}

func (r *fakeQuizRepo) Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	for _, q := range quizzes {
		r.quizzes[q.ID] = q
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) GetByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*types.Quiz, error) {
	var out []*types.Quiz
	for _, id := range quizIDs {
		if q, ok := r.quizzes[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) GetByChapterIDs(ctx context.Context, tx *gorm.DB, chapterIDs []uuid.UUID) ([]*types.Quiz, error) {
	var out []*types.Quiz
	for _, q := range r.quizzes {
		for _, id := range chapterIDs {
			if q.ChapterID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func TestQuizValidate(t *testing.T) {
	chapterID := uuid.New()
	quiz := &types.Quiz{
		ID:            uuid.New(),
		ChapterID:     chapterID,
		Question:      "q?",
		CorrectOption: "B",
		HintA:         "h1",
		HintB:         "h2",
		HintC:         "h3",
	}
	svc := NewQuizService(nil, testLogger(t), newFakeQuizRepo(quiz))
	ctx := context.Background()

	t.Run("correct answer is case-insensitive", func(t *testing.T) {
		for _, answer := range []string{"B", "b"} {
			result, err := svc.Validate(ctx, quiz.ID, answer)
			if err != nil {
				t.Fatalf("Validate(%q): %v", answer, err)
			}
			if result.Result != "correct" {
				t.Fatalf("Validate(%q): got result=%q want correct", answer, result.Result)
			}
			if result.Hint != "" {
				t.Fatalf("Validate(%q): correct answer must not carry a hint, got %q", answer, result.Hint)
			}
		}
	})

	t.Run("incorrect answer returns the hint for the chosen label", func(t *testing.T) {
		cases := []struct {
			answer string
			hint   string
		}{
			{"a", "h1"},
			{"A", "h1"},
			{"c", "h3"},
		}
		for _, tc := range cases {
			result, err := svc.Validate(ctx, quiz.ID, tc.answer)
			if err != nil {
				t.Fatalf("Validate(%q): %v", tc.answer, err)
			}
			if result.Result != "incorrect" {
				t.Fatalf("Validate(%q): got result=%q want incorrect", tc.answer, result.Result)
			}
			if result.Hint != tc.hint {
				t.Fatalf("Validate(%q): got hint=%q want %q", tc.answer, result.Hint, tc.hint)
			}
		}
	})

	t.Run("unknown label falls back to the fixed string", func(t *testing.T) {
		result, err := svc.Validate(ctx, quiz.ID, "z")
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if result.Result != "incorrect" || result.Hint != NoHintAvailable {
			t.Fatalf("got result=%q hint=%q, want incorrect with fallback", result.Result, result.Hint)
		}
	})

	t.Run("missing quiz is not found and names the id", func(t *testing.T) {
		missing := uuid.New()
		_, err := svc.Validate(ctx, missing, "a")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("got err=%v, want ErrNotFound", err)
		}
		if got := err.Error(); !strings.Contains(got, missing.String()) {
			t.Fatalf("error %q does not name the missing id", got)
		}
	})
}

func TestQuizListByChapter(t *testing.T) {
	chapterID := uuid.New()
	q1 := &types.Quiz{ID: uuid.New(), ChapterID: chapterID, Question: "q1?", CorrectOption: "A", HintA: "ha"}
	q2 := &types.Quiz{ID: uuid.New(), ChapterID: chapterID, Question: "q2?", CorrectOption: "C", HintC: "hc"}
	svc := NewQuizService(nil, testLogger(t), newFakeQuizRepo(q1, q2))
	ctx := context.Background()

	t.Run("returns every quiz of the chapter without the answer key", func(t *testing.T) {
		views, err := svc.ListByChapter(ctx, chapterID)
		if err != nil {
			t.Fatalf("ListByChapter: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("got %d quizzes, want 2", len(views))
		}
		// QuizView has no answer-key field at all; check the ids made it.
		seen := map[uuid.UUID]bool{}
		for _, v := range views {
			seen[v.ID] = true
			if v.ChapterID != chapterID {
				t.Fatalf("quiz %s has chapter %s, want %s", v.ID, v.ChapterID, chapterID)
			}
		}
		if !seen[q1.ID] || !seen[q2.ID] {
			t.Fatalf("listing is missing quizzes: %v", seen)
		}
	})

	t.Run("chapter with zero quizzes is not found", func(t *testing.T) {
		empty := uuid.New()
		_, err := svc.ListByChapter(ctx, empty)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("got err=%v, want ErrNotFound", err)
		}
		if got := err.Error(); !strings.Contains(got, empty.String()) {
			t.Fatalf("error %q does not name the chapter id", got)
		}
	})
}
