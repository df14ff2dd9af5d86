package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/samarth/internal/inference"
	"resty.dev/v3"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	httpClient *resty.Client
	model      string
}

type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.httpClient.SetBaseURL(strings.TrimRight(baseURL, "/"))
		}
	}
}

func NewClient(apiKey, model string, opts ...Option) *Client {
	client := resty.New()
	client.SetBaseURL(DefaultBaseURL)
	client.SetHeader("x-goog-api-key", apiKey)
	client.SetHeader("Content-Type", "application/json")

	c := &Client{
		httpClient: client,
		model:      strings.TrimPrefix(model, "models/"),
	}
	if c.model == "" {
		c.model = inference.DefaultModel
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	Tools            []Tool            `json:"tools,omitempty"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text,omitempty"`
}

type Tool struct {
	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`
}

type GoogleSearch struct{}

type GenerationConfig struct {
	Temperature *float32 `json:"temperature,omitempty"`
}

type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
	ModelVersion  string         `json:"modelVersion,omitempty"`
}

type Candidate struct {
	Content           Content            `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

type GroundingMetadata struct {
	WebSearchQueries []string         `json:"webSearchQueries,omitempty"`
	GroundingChunks  []GroundingChunk `json:"groundingChunks,omitempty"`
}

type GroundingChunk struct {
	Web *WebChunk `json:"web,omitempty"`
}

type WebChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// ErrorResponse is the error envelope of Google APIs
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type   string `json:"@type"`
			Reason string `json:"reason,omitempty"`
		} `json:"details,omitempty"`
	} `json:"error"`
}

func (client *Client) getRequestBody(params inference.GenerateContentRequest) GenerateContentRequest {
	temperature := params.Temperature
	body := GenerateContentRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: params.Prompt}},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature: &temperature,
		},
	}
	if params.EnableWebSearch {
		body.Tools = []Tool{{GoogleSearch: &GoogleSearch{}}}
	}
	return body
}

// GenerateContent implements the inference.Client interface
func (client *Client) GenerateContent(
	ctx context.Context,
	params inference.GenerateContentRequest,
) (inference.GenerateContentResponse, error) {
	requestBody := client.getRequestBody(params)

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetPathParam("model", client.model).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post("/models/{model}:generateContent")
	if err != nil {
		return inference.GenerateContentResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.GenerateContentResponse{}, newAPIError(response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*GenerateContentResponse)
	if !ok || responseBody == nil || len(responseBody.Candidates) == 0 {
		return inference.GenerateContentResponse{}, fmt.Errorf("empty response body or candidates: %s", response.String())
	}
	slog.Default().Debug("gemini response content",
		"request", requestBody,
		"response", responseBody,
	)

	candidate := responseBody.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return inference.GenerateContentResponse{}, fmt.Errorf("empty response content (finish reason %q): %s", candidate.FinishReason, response.String())
	}

	result := inference.GenerateContentResponse{Text: text.String()}
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
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

func newAPIError(statusCode int, body string) *inference.APIError {
	apiErr := &inference.APIError{
		StatusCode: statusCode,
		Message:    body,
	}

	var decoded ErrorResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil || decoded.Error.Message == "" {
		return apiErr
	}
	apiErr.Status = decoded.Error.Status
	apiErr.Message = decoded.Error.Message
	for _, detail := range decoded.Error.Details {
		if detail.Reason != "" {
			apiErr.Reasons = append(apiErr.Reasons, detail.Reason)
		}
	}
	return apiErr
}
