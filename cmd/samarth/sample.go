package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/samarth/internal/cli"
)

func newSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the sample question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.SampleQuestion)
			return err
		},
	}
}
