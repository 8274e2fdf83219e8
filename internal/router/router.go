package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/SahilKumar9009/Generative-Ai/internal/handlers"
	"github.com/SahilKumar9009/Generative-Ai/internal/middleware"
)

func New(
	flashcardHandler *handlers.FlashcardHandler,
	quizHandler *handlers.QuizHandler,
	chatHandler *handlers.ChatHandler,
	assistantHandler *handlers.AssistantHandler,
	memeHandler *handlers.MemeHandler,
	sessionHandler *handlers.SessionHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/flashCard", flashcardHandler.Generate)
		r.Post("/quiz", quizHandler.Generate)
		r.Post("/context", chatHandler.Context)
		r.Post("/personalAssistant", assistantHandler.GeneratePlan)
		r.Post("/meme", memeHandler.Generate)

		// ──── Conversation Sessions ────
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/{id}", sessionHandler.Get)
			r.Delete("/{id}", sessionHandler.Delete)
		})
	})

	return r
}
