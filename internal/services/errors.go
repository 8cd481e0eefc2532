package services

import "fmt"

// UnavailableError marks a provider-reported temporary overload. Handlers
// map it to 503 with a retry-later message; no retry is attempted here.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// RateLimitError marks a provider rate-limit rejection. RetryHint is a
// human-readable hint taken from provider error metadata when present.
type RateLimitError struct {
	RetryHint string
	Err       error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("provider rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }
