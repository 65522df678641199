package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/services"
	"github.com/neoverse/academy-backend/internal/types"
)

type stubQuizService struct {
	views  []types.QuizView
	result *services.ValidationResult
	err    error
}

func (s *stubQuizService) ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]types.QuizView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

func (s *stubQuizService) Validate(ctx context.Context, quizID uuid.UUID, userAnswer string) (*services.ValidationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newQuizRouter(t *testing.T, svc services.QuizService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	h := NewQuizHandler(log, svc)
	r := gin.New()
	r.GET("/quiz/:chapter_id", h.ListByChapter)
	r.POST("/quiz/validate/:quiz_id", h.Validate)
	return r
}

func TestListByChapterHandler(t *testing.T) {
	chapterID := uuid.New()

	t.Run("returns quizzes", func(t *testing.T) {
		svc := &stubQuizService{views: []types.QuizView{
			{ID: uuid.New(), ChapterID: chapterID, Question: "q?", OptionA: "a", OptionB: "b", OptionC: "c"},
		}}
		r := newQuizRouter(t, svc)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quiz/"+chapterID.String(), nil))

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
		}
		var body struct {
			Quizzes []map[string]interface{} `json:"quizzes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(body.Quizzes) != 1 {
			t.Fatalf("got %d quizzes", len(body.Quizzes))
		}
		for _, key := range []string{"correct_option", "hint_a", "hint_b", "hint_c"} {
			if _, ok := body.Quizzes[0][key]; ok {
				t.Fatalf("answer key field %q leaked into the response", key)
			}
		}
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		svc := &stubQuizService{err: fmt.Errorf("%w: no quizzes found for chapter %s", services.ErrNotFound, chapterID)}
		r := newQuizRouter(t, svc)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quiz/"+chapterID.String(), nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("got status %d", w.Code)
		}
	})

	t.Run("rejects malformed chapter id", func(t *testing.T) {
		r := newQuizRouter(t, &stubQuizService{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quiz/not-a-uuid", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", w.Code)
		}
	})
}

func TestValidateHandler(t *testing.T) {
	quizID := uuid.New()

	t.Run("returns the validation result", func(t *testing.T) {
		svc := &stubQuizService{result: &services.ValidationResult{Result: "incorrect", Hint: "read again"}}
		r := newQuizRouter(t, svc)
		w := httptest.NewRecorder()
		url := "/quiz/validate/" + quizID.String() + "?user_answer=a"
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
		}
		var body services.ValidationResult
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Result != "incorrect" || body.Hint != "read again" {
			t.Fatalf("got %+v", body)
		}
	})

	t.Run("correct answer omits the hint field", func(t *testing.T) {
		svc := &stubQuizService{result: &services.ValidationResult{Result: "correct"}}
		r := newQuizRouter(t, svc)
		w := httptest.NewRecorder()
		url := "/quiz/validate/" + quizID.String() + "?user_answer=b"
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if _, ok := body["hint"]; ok {
			t.Fatalf("empty hint was serialized: %v", body)
		}
	})

	t.Run("requires user_answer", func(t *testing.T) {
		r := newQuizRouter(t, &stubQuizService{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quiz/validate/"+quizID.String(), nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", w.Code)
		}
	})

	t.Run("maps missing quiz to 404", func(t *testing.T) {
		svc := &stubQuizService{err: fmt.Errorf("%w: quiz with id %s not found", services.ErrNotFound, quizID)}
		r := newQuizRouter(t, svc)
		w := httptest.NewRecorder()
		url := "/quiz/validate/" + quizID.String() + "?user_answer=a"
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("got status %d", w.Code)
		}
	})
}
