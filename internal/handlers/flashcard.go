package handlers

import (
	"context"
	"net/http"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type flashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, notes string) ([]models.Flashcard, error)
}

type FlashcardHandler struct {
	generator flashcardGenerator
}

func NewFlashcardHandler(generator flashcardGenerator) *FlashcardHandler {
	return &FlashcardHandler{generator: generator}
}

// Generate answers with the bare flashcard array, not a {data: ...} envelope.
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFlashcardsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleServiceError(w, r, "flashcard", "FLASHCARD_ERROR", "Failed to generate flashcards", err)
		return
	}

	cards, err := h.generator.GenerateFlashcards(r.Context(), req.Notes)
	if err != nil {
		handleServiceError(w, r, "flashcard", "FLASHCARD_ERROR", "Failed to generate flashcards", err)
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	writeJSON(w, http.StatusOK, cards)
}
