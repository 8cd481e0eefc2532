package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"mindrelay-backend/internal/handlers"
	"mindrelay-backend/internal/middleware"
)

func New(
	apiLimiter *middleware.RateLimiter,
	chatHandler *handlers.ChatHandler,
	quizHandler *handlers.QuizHandler,
	checklistHandler *handlers.ChecklistHandler,
	generateHandler *handlers.GenerateHandler,
	healthHandler *handlers.HealthHandler,
	staticDir string,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Liveness check (process only, no dependencies)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Static landing page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, staticDir+"/index.html")
	})

	// Raw adapter entry point
	r.Post("/generate", generateHandler.Generate)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Get("/test-db", healthHandler.TestDB)

		r.Post("/chat", chatHandler.Chat)
		r.Post("/general-chat", chatHandler.GeneralChat)
		r.Post("/specialised-chat", chatHandler.SpecialisedChat)
		r.Post("/quiz", quizHandler.Respond)
		r.Post("/checklist-response", checklistHandler.Respond)
	})

	return r
}
