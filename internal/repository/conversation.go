package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

// DefaultSessionID names the conversation shared by callers that do not send
// a session id. It is created on first use and seeded like any other session.
const DefaultSessionID = "default"

// ConversationRepo stores ordered chat history per session. Every session
// starts with exactly one system message.
type ConversationRepo interface {
	Create(ctx context.Context) (string, error)
	History(ctx context.Context, sessionID string) ([]models.Message, error)
	// Append adds msgs to the end of the session and returns the full history.
	Append(ctx context.Context, sessionID string, msgs ...models.Message) ([]models.Message, error)
	Delete(ctx context.Context, sessionID string) error
}

var (
	_ ConversationRepo = (*MemoryConversationRepo)(nil)
	_ ConversationRepo = (*RedisConversationRepo)(nil)
)

var ErrSessionNotFound = errors.New("conversation session not found")

var newSessionID = func() string {
	return uuid.NewString()
}
