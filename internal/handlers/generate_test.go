package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"mindrelay-backend/internal/services"
)

func TestGenerate_PassesPromptThrough(t *testing.T) {
	gen := &mockGenerator{reply: "raw output"}
	h := NewGenerateHandler(gen)

	rr := postJSON(t, h.Generate, "/generate", map[string]string{"prompt": "say hi"})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if gen.prompts[0] != "say hi" {
		t.Errorf("Prompt must be forwarded as-is, got %q", gen.prompts[0])
	}
	if resp := decodeField(t, rr, "response"); resp != "raw output" {
		t.Errorf("Expected adapter output under response, got %q", resp)
	}
}

func TestGenerate_RateLimitMapsTo429WithHint(t *testing.T) {
	gen := &mockGenerator{err: &services.RateLimitError{
		RetryHint: "Please retry in 30s.",
		Err:       errors.New("quota exceeded"),
	}}
	h := NewGenerateHandler(gen)

	rr := postJSON(t, h.Generate, "/generate", map[string]string{"prompt": "say hi"})

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", rr.Code)
	}
	msg := decodeField(t, rr, "error")
	if !strings.Contains(msg, "Please retry in 30s.") {
		t.Errorf("Expected retry hint in error message, got %q", msg)
	}
	if strings.Contains(msg, "quota exceeded") {
		t.Error("Raw provider error must never be echoed to the caller")
	}
}

func TestGenerate_UnknownErrorMapsTo500(t *testing.T) {
	gen := &mockGenerator{err: errors.New("boom")}
	h := NewGenerateHandler(gen)

	rr := postJSON(t, h.Generate, "/generate", map[string]string{"prompt": "say hi"})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	if msg := decodeField(t, rr, "error"); msg != msgProviderFailure {
		t.Errorf("Expected generic apology, got %q", msg)
	}
}
