package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"mindrelay-backend/internal/models"
)

// ProbeFunc runs the datastore liveness query and returns its timestamp.
type ProbeFunc func(ctx context.Context) (time.Time, error)

type HealthHandler struct {
	probe ProbeFunc
}

func NewHealthHandler(probe ProbeFunc) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// TestDB serves /api/test-db.
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	now, err := h.probe(r.Context())
	if err != nil {
		log.Printf("db probe failed [request_id=%s]: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Database connection failed."})
		return
	}

	writeJSON(w, http.StatusOK, models.DBStatusResponse{Now: now})
}
