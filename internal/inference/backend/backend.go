// Package backend builds the inference client selected in the configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/samarth/internal/config"
	"github.com/at-ishikawa/samarth/internal/inference"
	"github.com/at-ishikawa/samarth/internal/inference/gemini"
	"github.com/at-ishikawa/samarth/internal/inference/googlegenai"
)

// NewClient returns the client for cfg.Backend and a function releasing it
func NewClient(ctx context.Context, cfg config.GeminiConfig) (inference.Client, func(), error) {
	switch cfg.Backend {
	case config.BackendSDK:
		// The SDK appends the API version itself
		baseURL := cfg.BaseURL
		if baseURL == gemini.DefaultBaseURL {
			baseURL = ""
		}
		client, err := googlegenai.NewClient(ctx, cfg.APIKey, cfg.Model, baseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("googlegenai.NewClient() > %w", err)
		}
		logClient(config.BackendSDK, client.GetModel())
		return client, func() {}, nil
	case config.BackendREST, "":
		client := gemini.NewClient(cfg.APIKey, cfg.Model, gemini.WithBaseURL(cfg.BaseURL))
		logClient(config.BackendREST, client.GetModel())
		return client, func() {
			_ = client.Close()
		}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}

func logClient(backend, model string) {
	slog.Default().Debug("inference client created",
		slog.String("backend", backend),
		slog.String("model", model),
	)
}
