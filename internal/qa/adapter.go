// Package qa answers agricultural questions with government-grounded model output.
package qa

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/samarth/internal/inference"
)

type Adapter struct {
	client      inference.Client
	temperature float32
}

type Option func(*Adapter)

func WithTemperature(temperature float32) Option {
	return func(a *Adapter) {
		a.temperature = temperature
	}
}

func NewAdapter(client inference.Client, opts ...Option) *Adapter {
	adapter := &Adapter{
		client:      client,
		temperature: inference.DefaultTemperature,
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// Ask sends the question to the model with web search grounding and parses the answer.
// The question is not validated here; callers reject blank input.
func (a *Adapter) Ask(ctx context.Context, question string) (Result, error) {
	prompt := BuildPrompt(question)

	response, err := a.client.GenerateContent(ctx, inference.GenerateContentRequest{
		Prompt:          prompt,
		Temperature:     a.temperature,
		EnableWebSearch: true,
	})
	if err != nil {
		qaErr := classify(err)
		slog.Default().Error("failed to generate an answer",
			"kind", qaErr.Kind.String(),
			"error", err,
		)
		return Result{}, qaErr
	}
	slog.Default().Debug("model answer",
		"prompt", prompt,
		"text", response.Text,
		"groundingChunks", len(response.GroundingChunks),
	)

	analysis, summaryPoints := parseResponseText(response.Text)
	return Result{
		Analysis:      analysis,
		SummaryPoints: summaryPoints,
		Sources:       extractSources(response.GroundingChunks),
	}, nil
}

func classify(err error) *Error {
	var apiErr *inference.APIError
	if errors.As(err, &apiErr) && apiErr.IsInvalidCredential() {
		return newError(KindInvalidCredential, err)
	}
	if strings.Contains(err.Error(), "API key not valid") {
		return newError(KindInvalidCredential, err)
	}
	return newError(KindNoValidResponse, err)
}
