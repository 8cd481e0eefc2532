package handlers

import (
	"encoding/json"
	"net/http"

	"mindrelay-backend/internal/models"
	"mindrelay-backend/internal/services"
)

type QuizHandler struct {
	generator textGenerator
}

func NewQuizHandler(generator textGenerator) *QuizHandler {
	return &QuizHandler{generator: generator}
}

// Respond serves /api/quiz. The request's resolved mode selects between
// generating 10 yes/no questions and evaluating submitted answers.
func (h *QuizHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: "Invalid request body."})
		return
	}

	text, err := h.generator.Generate(r.Context(), services.BuildQuizPrompt(req))
	if err != nil {
		logProviderError(r, err)
		status, msg := providerErrorStatus(err)
		writeJSON(w, status, models.ChatResponse{Reply: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: text})
}
