package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/samarth/internal/assets"
	"github.com/at-ishikawa/samarth/internal/cli"
	"github.com/at-ishikawa/samarth/internal/pdf"
	"github.com/at-ishikawa/samarth/internal/qa"
	"github.com/at-ishikawa/samarth/internal/session"
)

func newAskCommand() *cobra.Command {
	var output string
	var pdfPath string

	command := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return session.ErrEmptyQuestion
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			adapter, closeClient, err := newAdapter(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeClient()

			result, err := adapter.Ask(cmd.Context(), question)
			if err != nil {
				return errors.New(qa.UserMessage(err))
			}

			writer := cli.NewResultWriter(cfg.Templates.AnswerTemplate)
			if err := writer.Write(cmd.OutOrStdout(), format, question, result); err != nil {
				return fmt.Errorf("writer.Write() > %w", err)
			}

			if pdfPath == "" {
				return nil
			}
			var markdown bytes.Buffer
			if err := assets.WriteAnswer(&markdown, cfg.Templates.AnswerTemplate, assets.AnswerTemplate{
				Question: question,
				Result:   result,
			}); err != nil {
				return fmt.Errorf("assets.WriteAnswer() > %w", err)
			}
			path, err := pdf.ConvertMarkdownToPDF(markdown.Bytes(), pdfPath)
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "PDF written to %s\n", path)
			return nil
		},
	}

	command.Flags().StringVarP(&output, "output", "o", string(cli.OutputText), "output format: text, json, yaml or markdown")
	command.Flags().StringVar(&pdfPath, "pdf", "", "also write the answer as a PDF file")
	return command
}
