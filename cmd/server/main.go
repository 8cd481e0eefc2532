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

	"mindrelay-backend/internal/config"
	"mindrelay-backend/internal/database"
	"mindrelay-backend/internal/handlers"
	"mindrelay-backend/internal/middleware"
	"mindrelay-backend/internal/router"
	"mindrelay-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting MindRelay Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.GeminiAPIKey != "" {
		log.Println("✓ Gemini API key found")
	} else {
		log.Println("⚠ GEMINI_API_KEY not set; generation requests will fail")
	}

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	// The pool is created without a startup ping: an unreachable datastore
	// is reported through /api/test-db, not by refusing to boot.
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL pool setup failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL pool ready")

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model %s)", cfg.GeminiModel)

	// ──── Step 4: Rate Limiter ────
	window := time.Duration(cfg.RateWindowSecs) * time.Second
	apiLimiter := middleware.NewRateLimiter(cfg.RateLimit, window)
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		apiLimiter = middleware.NewRedisRateLimiter(redisClient, cfg.RateLimit, window)
		log.Println("✓ Redis-backed rate limiter enabled")
	} else {
		log.Println("✓ In-memory rate limiter enabled")
	}

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService)
	quizHandler := handlers.NewQuizHandler(geminiService)
	checklistHandler := handlers.NewChecklistHandler(geminiService)
	generateHandler := handlers.NewGenerateHandler(geminiService)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) (time.Time, error) {
		return database.Probe(ctx, pool)
	})

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		apiLimiter,
		chatHandler,
		quizHandler,
		checklistHandler,
		generateHandler,
		healthHandler,
		"static",
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ MindRelay Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
