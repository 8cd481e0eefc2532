package models

// ChatRequest is the payload for the plain and general chat endpoints.
type ChatRequest struct {
	Message string `json:"message"`
}

// SpecialisedChatRequest carries the caller-selected condition category.
type SpecialisedChatRequest struct {
	Disorder string `json:"disorder"`
	Message  string `json:"message"`
}

// ChatResponse is the reply from the AI counsellor.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// GenerateRequest is the body of the raw /generate endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse wraps the raw adapter output.
type GenerateResponse struct {
	Response string `json:"response"`
}
