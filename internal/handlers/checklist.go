package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"mindrelay-backend/internal/models"
	"mindrelay-backend/internal/services"
)

type ChecklistHandler struct {
	generator textGenerator
}

func NewChecklistHandler(generator textGenerator) *ChecklistHandler {
	return &ChecklistHandler{generator: generator}
}

// Respond serves /api/checklist-response: daily tasks for "checklist",
// a completion remark for "remarks".
func (h *ChecklistHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req models.ChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body."})
		return
	}

	if strings.TrimSpace(req.Disorder) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Disorder is required."})
		return
	}

	if req.Type != models.ChecklistTypeChecklist && req.Type != models.ChecklistTypeRemarks {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: `Type must be "checklist" or "remarks".`})
		return
	}

	// An empty task list would trivially satisfy completed == total and
	// congratulate the user for doing nothing, so remarks require tasks.
	if req.Type == models.ChecklistTypeRemarks && len(req.Tasks) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "At least one task is required for remarks."})
		return
	}

	text, err := h.generator.Generate(r.Context(), services.BuildChecklistPrompt(req))
	if err != nil {
		logProviderError(r, err)
		status, msg := providerErrorStatus(err)
		writeJSON(w, status, models.ErrorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.ChecklistResponse{Message: text})
}
