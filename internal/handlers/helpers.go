package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mindrelay-backend/internal/services"
)

// textGenerator is the slice of the generation adapter the handlers need.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// User-facing failure messages. Raw provider errors are logged, never sent.
const (
	msgProviderBusy    = "The counsellor is busy right now. Please try again in a moment."
	msgProviderFailure = "Sorry, something went wrong on our side. Please try again later."
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// providerErrorStatus maps a generation failure to an HTTP status and a
// user-facing message. The caller picks the payload field.
func providerErrorStatus(err error) (int, string) {
	var unavailable *services.UnavailableError
	var rateLimited *services.RateLimitError

	switch {
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable, msgProviderBusy
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests, "Rate limit exceeded. " + rateLimited.RetryHint
	default:
		return http.StatusInternalServerError, msgProviderFailure
	}
}

func logProviderError(r *http.Request, err error) {
	log.Printf("generation failed [%s %s] [request_id=%s]: %v",
		r.Method, r.URL.Path, r.Header.Get("X-Request-ID"), err)
}
