package handlers

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type memeGenerator interface {
	GenerateMeme(ctx context.Context, prompt string) ([]byte, string, error)
}

type MemeHandler struct {
	generator memeGenerator
}

func NewMemeHandler(generator memeGenerator) *MemeHandler {
	return &MemeHandler{generator: generator}
}

func (h *MemeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateMemeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleServiceError(w, r, "meme", "MEME_ERROR", "Failed to generate meme", err)
		return
	}

	image, _, err := h.generator.GenerateMeme(r.Context(), req.Prompt)
	if err != nil {
		handleServiceError(w, r, "meme", "MEME_ERROR", "Failed to generate meme", err)
		return
	}

	writeJSON(w, http.StatusOK, models.MemeResponse{Image: base64.StdEncoding.EncodeToString(image)})
}
