package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
	"github.com/SahilKumar9009/Generative-Ai/internal/repository"
	"github.com/SahilKumar9009/Generative-Ai/internal/services"
)

const testSeed = "test system prompt"

func newChatFixture(t *testing.T, gw *stubGateway) (*ChatHandler, *repository.MemoryConversationRepo) {
	t.Helper()
	repo := repository.NewMemoryConversationRepo(testSeed, 0)
	t.Cleanup(repo.Close)
	return NewChatHandler(repo, newGenerator(gw)), repo
}

func TestChatHandler_SequentialCallsBuildHistory(t *testing.T) {
	gw := &stubGateway{result: textResult("ok")}
	h, repo := newChatFixture(t, gw)

	rr := postJSON(t, h.Context, "/api/context", map[string]string{"prompt": "Hi"})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ContextResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Response)
	assert.Equal(t, repository.DefaultSessionID, resp.SessionID)

	rr = postJSON(t, h.Context, "/api/context", map[string]string{"prompt": "How are you"})
	require.Equal(t, http.StatusOK, rr.Code)

	history, err := repo.History(context.Background(), repository.DefaultSessionID)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{
		{Role: models.RoleSystem, Content: testSeed},
		{Role: models.RoleUser, Content: "Hi"},
		{Role: models.RoleAssistant, Content: "ok"},
		{Role: models.RoleUser, Content: "How are you"},
		{Role: models.RoleAssistant, Content: "ok"},
	}, history)

	// The second call must have carried the first exchange to the model.
	require.Len(t, gw.calls, 2)
	assert.Len(t, gw.calls[1], 4)
	assert.Equal(t, models.RoleAssistant, gw.calls[1][2].Role)
}

func TestChatHandler_FailedCallRecordsNothing(t *testing.T) {
	gw := &stubGateway{err: &services.UpstreamError{Model: "text-model", Err: fmt.Errorf("boom")}}
	h, repo := newChatFixture(t, gw)

	rr := postJSON(t, h.Context, "/api/context", map[string]string{"prompt": "Hi"})
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "CHAT_ERROR", decodeError(t, rr).Code)

	history, err := repo.History(context.Background(), repository.DefaultSessionID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestChatHandler_SessionsAreIsolated(t *testing.T) {
	gw := &stubGateway{result: textResult("noted")}
	h, repo := newChatFixture(t, gw)

	sessionID, err := repo.Create(context.Background())
	require.NoError(t, err)

	rr := postJSON(t, h.Context, "/api/context", map[string]string{"prompt": "my secret", "sessionId": sessionID})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ContextResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, sessionID, resp.SessionID)

	shared, err := repo.History(context.Background(), repository.DefaultSessionID)
	require.NoError(t, err)
	assert.Len(t, shared, 1, "default session must not see another session's messages")

	private, err := repo.History(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Len(t, private, 3)
}

func TestChatHandler_SessionFromHeader(t *testing.T) {
	gw := &stubGateway{result: textResult("hello")}
	h, repo := newChatFixture(t, gw)

	sessionID, err := repo.Create(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/context", jsonReader(t, map[string]string{"prompt": "Hi"}))
	req.Header.Set(SessionIDHeader, sessionID)
	rr := httptest.NewRecorder()
	h.Context(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	history, err := repo.History(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestChatHandler_UnknownSession(t *testing.T) {
	gw := &stubGateway{result: textResult("hello")}
	h, _ := newChatFixture(t, gw)

	rr := postJSON(t, h.Context, "/api/context", map[string]string{"prompt": "Hi", "sessionId": "nope"})

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rr).Code)
	assert.Empty(t, gw.calls)
}

func TestChatHandler_ConcurrentCallsKeepEveryMessage(t *testing.T) {
	gw := &stubGateway{result: textResult("ok")}
	h, repo := newChatFixture(t, gw)

	prompts := []string{"first caller", "second caller"}
	var wg sync.WaitGroup
	for _, p := range prompts {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			rr := postJSON(t, h.Context, "/api/context", map[string]string{"prompt": p})
			assert.Equal(t, http.StatusOK, rr.Code)
		}(p)
	}
	wg.Wait()

	history, err := repo.History(context.Background(), repository.DefaultSessionID)
	require.NoError(t, err)
	require.Len(t, history, 5)

	var userPrompts []string
	for _, m := range history {
		if m.Role == models.RoleUser {
			userPrompts = append(userPrompts, m.Content)
		}
	}
	assert.ElementsMatch(t, prompts, userPrompts)
}

// ─── Sessions ───

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSessionHandler_Lifecycle(t *testing.T) {
	repo := repository.NewMemoryConversationRepo(testSeed, 0)
	t.Cleanup(repo.Close)
	h := NewSessionHandler(repo)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.SessionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	require.NotEmpty(t, created.SessionID)

	rr = httptest.NewRecorder()
	h.Get(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/api/sessions/"+created.SessionID, nil), "id", created.SessionID))
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.SessionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, []models.Message{{Role: models.RoleSystem, Content: testSeed}}, got.Messages)

	rr = httptest.NewRecorder()
	h.Delete(rr, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/sessions/"+created.SessionID, nil), "id", created.SessionID))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.Get(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/api/sessions/"+created.SessionID, nil), "id", created.SessionID))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestChatHandler_SessionIDTooLong(t *testing.T) {
	gw := &stubGateway{result: textResult("hello")}
	h, _ := newChatFixture(t, gw)
	longID := strings.Repeat("x", 65)

	t.Run("body", func(t *testing.T) {
		rr := postJSON(t, h.Context, "/api/context", map[string]string{"prompt": "Hi", "sessionId": longID})
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Fields, "sessionId")
	})

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/context", jsonReader(t, map[string]string{"prompt": "Hi"}))
		req.Header.Set(SessionIDHeader, longID)
		rr := httptest.NewRecorder()
		h.Context(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		apiErr := decodeError(t, rr)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
		assert.Equal(t, "Must be at most 64 characters", apiErr.Fields["sessionId"])
	})

	assert.Empty(t, gw.calls)
}
