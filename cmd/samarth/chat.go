package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/samarth/internal/cli"
	"github.com/at-ishikawa/samarth/internal/session"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive question session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			adapter, closeClient, err := newAdapter(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeClient()

			questionCLI := cli.NewQuestionCLI(cmd.InOrStdin(), cmd.OutOrStdout(), session.NewCoordinator(adapter))
			questionCLI.Start()
			return questionCLI.Run(cmd.Context(), questionCLI)
		},
	}
}
