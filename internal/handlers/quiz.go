package handlers

import (
	"context"
	"net/http"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type quizGenerator interface {
	GenerateQuiz(ctx context.Context, topic string) ([]models.QuizQuestion, error)
}

type QuizHandler struct {
	generator quizGenerator
}

func NewQuizHandler(generator quizGenerator) *QuizHandler {
	return &QuizHandler{generator: generator}
}

func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleServiceError(w, r, "quiz", "QUIZ_ERROR", "Failed to generate quiz", err)
		return
	}

	questions, err := h.generator.GenerateQuiz(r.Context(), req.Topic)
	if err != nil {
		handleServiceError(w, r, "quiz", "QUIZ_ERROR", "Failed to generate quiz", err)
		return
	}
	if questions == nil {
		questions = []models.QuizQuestion{}
	}

	writeJSON(w, http.StatusOK, models.QuizResponse{Data: questions})
}
