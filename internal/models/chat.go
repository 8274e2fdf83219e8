package models

// Roles used in a conversation. The Gemini gateway maps them onto the
// provider's own role names.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single turn in a conversation.
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// ContextRequest is the payload sent to the context chat endpoint.
// SessionID is optional; without it the shared default conversation is used.
type ContextRequest struct {
	Prompt    string `json:"prompt" validate:"required"`
	SessionID string `json:"sessionId,omitempty" validate:"omitempty,max=64"`
}

// ContextResponse is the reply from the context chat.
type ContextResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages,omitempty"`
}
