package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/services"
)

type QuizHandler struct {
	log         *logger.Logger
	quizService services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizService services.QuizService) *QuizHandler {
	return &QuizHandler{
		log:         log.With("handler", "QuizHandler"),
		quizService: quizService,
	}
}

// GET /quiz/:chapter_id
func (qh *QuizHandler) ListByChapter(c *gin.Context) {
	chapterID, err := uuid.Parse(c.Param("chapter_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid chapter id"))
		return
	}
	quizzes, err := qh.quizService.ListByChapter(c.Request.Context(), chapterID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"quizzes": quizzes})
}

// POST /quiz/validate/:quiz_id?user_answer=<label>
func (qh *QuizHandler) Validate(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid quiz id"))
		return
	}
	userAnswer := c.Query("user_answer")
	if userAnswer == "" {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("user_answer is required"))
		return
	}
	result, err := qh.quizService.Validate(c.Request.Context(), quizID, userAnswer)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
