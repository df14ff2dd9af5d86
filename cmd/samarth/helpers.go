package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/samarth/internal/config"
	"github.com/at-ishikawa/samarth/internal/inference/backend"
	"github.com/at-ishikawa/samarth/internal/qa"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	if flag := cmd.Flags().Lookup("model"); flag != nil && flag.Changed {
		if err := loader.BindPFlag("gemini.model", flag); err != nil {
			return nil, fmt.Errorf("loader.BindPFlag() > %w", err)
		}
	}
	return loader.Load()
}

func newAdapter(ctx context.Context, cfg *config.Config) (*qa.Adapter, func(), error) {
	client, closeClient, err := backend.NewClient(ctx, cfg.Gemini)
	if err != nil {
		return nil, nil, fmt.Errorf("backend.NewClient() > %w", err)
	}
	return qa.NewAdapter(client, qa.WithTemperature(cfg.Gemini.Temperature)), closeClient, nil
}
