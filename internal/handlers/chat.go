package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
	"github.com/SahilKumar9009/Generative-Ai/internal/repository"
	"github.com/SahilKumar9009/Generative-Ai/internal/services"
)

const SessionIDHeader = "X-Session-ID"

type conversationRepository interface {
	Create(ctx context.Context) (string, error)
	History(ctx context.Context, sessionID string) ([]models.Message, error)
	Append(ctx context.Context, sessionID string, msgs ...models.Message) ([]models.Message, error)
	Delete(ctx context.Context, sessionID string) error
}

type chatGenerator interface {
	Chat(ctx context.Context, history []models.Message) (string, error)
}

type ChatHandler struct {
	conversations conversationRepository
	generator     chatGenerator
}

func NewChatHandler(conversations conversationRepository, generator chatGenerator) *ChatHandler {
	return &ChatHandler{
		conversations: conversations,
		generator:     generator,
	}
}

// Context sends the prompt together with the session history to the model.
// The prompt and the reply are recorded only once the model has answered.
func (h *ChatHandler) Context(w http.ResponseWriter, r *http.Request) {
	var req models.ContextRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleServiceError(w, r, "context", "CHAT_ERROR", "Failed to get AI response", err)
		return
	}

	sessionID := resolveSessionID(req.SessionID, r)
	if err := validateSessionID(sessionID); err != nil {
		handleServiceError(w, r, "context", "CHAT_ERROR", "Failed to get AI response", err)
		return
	}

	history, err := h.conversations.History(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, r, "context", "CHAT_ERROR", "Failed to get AI response", err)
		return
	}

	userMsg := models.Message{Role: models.RoleUser, Content: req.Prompt}

	reply, err := h.generator.Chat(r.Context(), append(history, userMsg))
	if err != nil {
		handleServiceError(w, r, "context", "CHAT_ERROR", "Failed to get AI response", err)
		return
	}

	assistantMsg := models.Message{Role: models.RoleAssistant, Content: reply}
	if _, err := h.conversations.Append(r.Context(), sessionID, userMsg, assistantMsg); err != nil {
		// The reply is still returned; only the history update is lost.
		log.Printf("context: failed to record turn for session %s: %v", sessionID, err)
	}

	writeJSON(w, http.StatusOK, models.ContextResponse{Response: reply, SessionID: sessionID})
}

func resolveSessionID(fromBody string, r *http.Request) string {
	if id := strings.TrimSpace(fromBody); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.Header.Get(SessionIDHeader)); id != "" {
		return id
	}
	return repository.DefaultSessionID
}

// validateSessionID applies the body field's length rule to ids that arrived
// through the header.
func validateSessionID(id string) error {
	if err := validate.Var(id, "max=64"); err != nil {
		return &services.ValidationError{Fields: map[string]string{"sessionId": "Must be at most 64 characters"}}
	}
	return nil
}
