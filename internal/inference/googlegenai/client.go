// Package googlegenai implements inference.Client on top of the official Gen AI SDK.
package googlegenai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/samarth/internal/inference"
	"google.golang.org/genai"
)

type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini API backed client. An empty baseURL keeps the SDK default.
func NewClient(ctx context.Context, apiKey, model, baseURL string) (*Client, error) {
	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient > %w", err)
	}

	model = strings.TrimPrefix(model, "models/")
	if model == "" {
		model = inference.DefaultModel
	}
	return &Client{
		client: client,
		model:  model,
	}, nil
}

// GetModel returns the model name configured for this client
func (c *Client) GetModel() string {
	return c.model
}

// GenerateContent implements the inference.Client interface
func (c *Client) GenerateContent(
	ctx context.Context,
	params inference.GenerateContentRequest,
) (inference.GenerateContentResponse, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(params.Temperature),
	}
	if params.EnableWebSearch {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	response, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(params.Prompt), config)
	if err != nil {
		return inference.GenerateContentResponse{}, convertError(err)
	}
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0] == nil {
		return inference.GenerateContentResponse{}, fmt.Errorf("empty response candidates")
	}
	slog.Default().Debug("genai response content",
		"model", c.model,
		"response", response,
	)

	candidate := response.Candidates[0]
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			text.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return inference.GenerateContentResponse{}, fmt.Errorf("empty response content (finish reason %q)", candidate.FinishReason)
	}

	result := inference.GenerateContentResponse{Text: text.String()}
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				result.GroundingChunks = append(result.GroundingChunks, inference.GroundingChunk{})
				continue
			}
			result.GroundingChunks = append(result.GroundingChunks, inference.GroundingChunk{
				Web: &inference.WebChunk{URI: chunk.Web.URI, Title: chunk.Web.Title},
			})
		}
	}
	return result, nil
}

func convertError(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return fmt.Errorf("Models.GenerateContent > %w", err)
	}

	converted := &inference.APIError{
		StatusCode: apiErr.Code,
		Status:     apiErr.Status,
		Message:    apiErr.Message,
	}
	for _, detail := range apiErr.Details {
		if reason, ok := detail["reason"].(string); ok && reason != "" {
			converted.Reasons = append(converted.Reasons, reason)
		}
	}
	return converted
}
