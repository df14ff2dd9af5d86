package inference

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = float32(0.2)
)

// Client interface defines the methods for grounded text generation
type Client interface {
	GenerateContent(ctx context.Context, params GenerateContentRequest) (GenerateContentResponse, error)
}

// GenerateContentRequest holds a single-turn prompt and its generation settings
type GenerateContentRequest struct {
	Prompt          string  `json:"prompt"`
	Temperature     float32 `json:"temperature"`
	EnableWebSearch bool    `json:"enable_web_search"`
}

// GenerateContentResponse is the generated text with the web chunks the model cited
type GenerateContentResponse struct {
	Text            string           `json:"text"`
	GroundingChunks []GroundingChunk `json:"grounding_chunks,omitempty"`
}

// GroundingChunk is one citation from the grounding metadata.
// Web is nil for non-web chunks (e.g. retrieved context).
type GroundingChunk struct {
	Web *WebChunk `json:"web,omitempty"`
}

type WebChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// APIError is returned when the remote API rejects a request
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	// Reasons holds ErrorInfo reasons from the error details, e.g. API_KEY_INVALID
	Reasons []string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("response error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

// IsInvalidCredential reports whether the API rejected the configured API key
func (e *APIError) IsInvalidCredential() bool {
	for _, reason := range e.Reasons {
		if reason == "API_KEY_INVALID" {
			return true
		}
	}
	return strings.Contains(e.Message, "API key not valid")
}
