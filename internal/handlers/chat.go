package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"mindrelay-backend/internal/models"
	"mindrelay-backend/internal/services"
)

type ChatHandler struct {
	generator textGenerator
}

func NewChatHandler(generator textGenerator) *ChatHandler {
	return &ChatHandler{generator: generator}
}

// Chat forwards the user message verbatim, with no template applied.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: "Invalid request body."})
		return
	}

	h.reply(w, r, req.Message)
}

// GeneralChat renders the general counsellor template; the model infers the
// condition category from the message.
func (h *ChatHandler) GeneralChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: "Invalid request body."})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: "Message is required."})
		return
	}

	h.reply(w, r, services.BuildGeneralChatPrompt(req.Message))
}

// SpecialisedChat renders the specialised counsellor template with the
// caller-selected category.
func (h *ChatHandler) SpecialisedChat(w http.ResponseWriter, r *http.Request) {
	var req models.SpecialisedChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: "Invalid request body."})
		return
	}

	if strings.TrimSpace(req.Disorder) == "" || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: "Both disorder and message are required."})
		return
	}

	h.reply(w, r, services.BuildSpecialisedChatPrompt(req.Disorder, req.Message))
}

// reply issues the single adapter call and serializes the outcome under the
// "reply" key shared by all chat endpoints.
func (h *ChatHandler) reply(w http.ResponseWriter, r *http.Request, prompt string) {
	text, err := h.generator.Generate(r.Context(), prompt)
	if err != nil {
		logProviderError(r, err)
		status, msg := providerErrorStatus(err)
		writeJSON(w, status, models.ChatResponse{Reply: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: text})
}
