package repository

import (
	"context"
	"sync"
	"time"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type conversation struct {
	messages []models.Message
	lastSeen time.Time
}

// MemoryConversationRepo keeps conversations in process memory. Sessions idle
// for longer than ttl are evicted by a background janitor.
type MemoryConversationRepo struct {
	mu       sync.Mutex
	sessions map[string]*conversation
	seed     string
	ttl      time.Duration
	now      func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewMemoryConversationRepo(systemPrompt string, ttl time.Duration) *MemoryConversationRepo {
	r := &MemoryConversationRepo{
		sessions: make(map[string]*conversation),
		seed:     systemPrompt,
		ttl:      ttl,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	// Cleanup goroutine
	if ttl > 0 {
		go func() {
			ticker := time.NewTicker(ttl)
			defer ticker.Stop()
			for {
				select {
				case <-r.stopChan:
					return
				case <-ticker.C:
					r.evictIdle()
				}
			}
		}()
	}

	return r
}

func (r *MemoryConversationRepo) Close() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

func (r *MemoryConversationRepo) Create(ctx context.Context) (string, error) {
	id := newSessionID()

	r.mu.Lock()
	r.sessions[id] = r.newConversation()
	r.mu.Unlock()

	return id, nil
}

func (r *MemoryConversationRepo) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return cloneMessages(c.messages), nil
}

// Append adds msgs to the end of the session and returns the full history.
func (r *MemoryConversationRepo) Append(ctx context.Context, sessionID string, msgs ...models.Message) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	c.messages = append(c.messages, msgs...)
	return cloneMessages(c.messages), nil
}

func (r *MemoryConversationRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

// lookup must be called with r.mu held. It refreshes lastSeen.
func (r *MemoryConversationRepo) lookup(sessionID string) (*conversation, error) {
	c, ok := r.sessions[sessionID]
	if !ok {
		if sessionID != DefaultSessionID {
			return nil, ErrSessionNotFound
		}
		c = r.newConversation()
		r.sessions[sessionID] = c
	}
	c.lastSeen = r.now()
	return c, nil
}

func (r *MemoryConversationRepo) newConversation() *conversation {
	return &conversation{
		messages: []models.Message{{Role: models.RoleSystem, Content: r.seed}},
		lastSeen: r.now(),
	}
}

func (r *MemoryConversationRepo) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, c := range r.sessions {
		if now.Sub(c.lastSeen) > r.ttl {
			delete(r.sessions, id)
		}
	}
}

func cloneMessages(msgs []models.Message) []models.Message {
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out
}
