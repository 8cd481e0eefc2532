package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTestDB_ReturnsTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	h := NewHealthHandler(func(ctx context.Context) (time.Time, error) {
		return now, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/test-db", nil)
	rr := httptest.NewRecorder()
	h.TestDB(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp struct {
		Now time.Time `json:"now"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Now.Equal(now) {
		t.Errorf("Expected %v, got %v", now, resp.Now)
	}
}

func TestTestDB_UnreachableDatastoreReturns500(t *testing.T) {
	h := NewHealthHandler(func(ctx context.Context) (time.Time, error) {
		return time.Time{}, errors.New("connection refused")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/test-db", nil)
	rr := httptest.NewRecorder()
	h.TestDB(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	if msg := decodeField(t, rr, "error"); msg == "" {
		t.Error("Expected a generic message under error")
	}
}

func TestTestDB_ProbeInvokedOncePerRequest(t *testing.T) {
	calls := 0
	h := NewHealthHandler(func(ctx context.Context) (time.Time, error) {
		calls++
		return time.Time{}, errors.New("down")
	})

	// Consecutive failures must not change probe behavior; each request
	// runs exactly one scoped acquire/query/release cycle.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/test-db", nil)
		rr := httptest.NewRecorder()
		h.TestDB(rr, req)

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("Request %d: expected 500, got %d", i, rr.Code)
		}
	}

	if calls != 5 {
		t.Errorf("Expected 5 probe calls, got %d", calls)
	}
}
