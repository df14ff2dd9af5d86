package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
	modelName  string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "samarth",
		Short:         "Ask questions about Indian agriculture and climate, answered from official sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}

	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./config.yml or $HOME/.config/samarth/config.yml)")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCommand.PersistentFlags().StringVar(&modelName, "model", "", "Gemini model name, overrides gemini.model")

	rootCommand.AddCommand(newAskCommand())
	rootCommand.AddCommand(newChatCommand())
	rootCommand.AddCommand(newSampleCommand())
	return rootCommand
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(logger)
}
