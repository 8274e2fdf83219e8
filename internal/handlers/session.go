package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type SessionHandler struct {
	conversations conversationRepository
}

func NewSessionHandler(conversations conversationRepository) *SessionHandler {
	return &SessionHandler{conversations: conversations}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.conversations.Create(r.Context())
	if err != nil {
		handleServiceError(w, r, "sessions", "INTERNAL_ERROR", "Failed to create session", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.SessionResponse{SessionID: id})
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	messages, err := h.conversations.History(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, "sessions", "INTERNAL_ERROR", "Failed to load session", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SessionResponse{SessionID: id, Messages: messages})
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.conversations.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, "sessions", "INTERNAL_ERROR", "Failed to delete session", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}
