package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SahilKumar9009/Generative-Ai/internal/config"
	"github.com/SahilKumar9009/Generative-Ai/internal/database"
	"github.com/SahilKumar9009/Generative-Ai/internal/handlers"
	"github.com/SahilKumar9009/Generative-Ai/internal/repository"
	"github.com/SahilKumar9009/Generative-Ai/internal/router"
	"github.com/SahilKumar9009/Generative-Ai/internal/services"
)

func main() {
	log.Println("🚀 Starting Generative AI backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	generator := services.NewGenerator(geminiService, cfg.GeminiModel, cfg.GeminiImageModel)
	log.Printf("✓ Gemini client initialized (text: %s, image: %s)", cfg.GeminiModel, cfg.GeminiImageModel)

	// ──── Step 3: Initialize Conversation Store ────
	var conversations repository.ConversationRepo
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		conversations = repository.NewRedisConversationRepo(redisClient, services.ChatSystemPrompt, cfg.SessionTTL)
		log.Printf("✓ Conversation store: Redis (session TTL %s)", cfg.SessionTTL)
	} else {
		memoryRepo := repository.NewMemoryConversationRepo(services.ChatSystemPrompt, cfg.SessionTTL)
		defer memoryRepo.Close()
		conversations = memoryRepo
		log.Printf("✓ Conversation store: in-memory (session TTL %s)", cfg.SessionTTL)
	}

	// ──── Initialize Handlers ────
	flashcardHandler := handlers.NewFlashcardHandler(generator)
	quizHandler := handlers.NewQuizHandler(generator)
	chatHandler := handlers.NewChatHandler(conversations, generator)
	assistantHandler := handlers.NewAssistantHandler(generator)
	memeHandler := handlers.NewMemeHandler(generator)
	sessionHandler := handlers.NewSessionHandler(conversations)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		flashcardHandler,
		quizHandler,
		chatHandler,
		assistantHandler,
		memeHandler,
		sessionHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // image generation is slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("✓ Server is running on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-done
}
