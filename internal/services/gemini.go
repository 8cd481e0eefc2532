package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// FallbackReply is substituted whenever the provider returns a response
// with no extractable text, so callers always see a non-empty reply.
const FallbackReply = "I'm sorry, I couldn't generate a response right now. Please try again."

// GenericRetryHint is used when the provider's rate-limit error carries no
// usable retry metadata.
const GenericRetryHint = "Please wait a moment before trying again."

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Generate sends one prompt to the provider and returns its text. Provider
// failures come back as typed errors (UnavailableError, RateLimitError) for
// the handler boundary to map; anything else is returned as-is for generic
// 500 handling. No retries happen at this layer.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyProviderError(err)
	}

	text := extractFirstText(resp)
	if text == "" {
		return FallbackReply, nil
	}
	return text, nil
}

// extractFirstText walks candidate -> content -> parts and returns the
// first text part, or "" when any level is absent. Keeping this total makes
// the no-text case an explicit branch instead of a nil dereference.
func extractFirstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				return strings.TrimSpace(string(t))
			}
		}
	}
	return ""
}

// classifyProviderError maps provider failures onto the service error
// taxonomy. The genai SDK surfaces REST failures as *googleapi.Error; some
// transports only carry the status in the message text, so that is checked
// as a fallback.
func classifyProviderError(err error) error {
	var gapi *googleapi.Error
	if errors.As(err, &gapi) {
		switch gapi.Code {
		case http.StatusServiceUnavailable:
			return &UnavailableError{Err: err}
		case http.StatusTooManyRequests:
			return &RateLimitError{RetryHint: retryHintFrom(gapi), Err: err}
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "overloaded"), strings.Contains(msg, "unavailable"):
		return &UnavailableError{Err: err}
	case strings.Contains(msg, "resource exhausted"), strings.Contains(msg, "rate limit"), strings.Contains(msg, "quota"):
		return &RateLimitError{RetryHint: GenericRetryHint, Err: err}
	}

	return err
}

// retryHintFrom digs the RetryInfo detail out of a rate-limit error.
func retryHintFrom(gapi *googleapi.Error) string {
	for _, detail := range gapi.Details {
		m, ok := detail.(map[string]interface{})
		if !ok {
			continue
		}
		t, _ := m["@type"].(string)
		if !strings.Contains(t, "RetryInfo") {
			continue
		}
		if delay, ok := m["retryDelay"].(string); ok && delay != "" {
			return fmt.Sprintf("Please retry in %s.", delay)
		}
	}
	return GenericRetryHint
}
