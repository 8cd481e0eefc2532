package handlers

import (
	"encoding/json"
	"net/http"

	"mindrelay-backend/internal/models"
)

type GenerateHandler struct {
	generator textGenerator
}

func NewGenerateHandler(generator textGenerator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// Generate is the raw adapter entry point: the prompt is forwarded with no
// template applied. Rate-limit mapping (429 + retry hint) surfaces here
// under the "error" key.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body."})
		return
	}

	text, err := h.generator.Generate(r.Context(), req.Prompt)
	if err != nil {
		logProviderError(r, err)
		status, msg := providerErrorStatus(err)
		writeJSON(w, status, models.ErrorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{Response: text})
}
