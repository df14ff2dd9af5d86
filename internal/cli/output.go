package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/at-ishikawa/samarth/internal/assets"
	"github.com/at-ishikawa/samarth/internal/qa"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputJSON     OutputFormat = "json"
	OutputYAML     OutputFormat = "yaml"
	OutputMarkdown OutputFormat = "markdown"
)

func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(value); format {
	case OutputText, OutputJSON, OutputYAML, OutputMarkdown:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: must be one of text, json, yaml, markdown", value)
	}
}

// ResultWriter writes a single answer in one of the output formats
type ResultWriter struct {
	view         *View
	templatePath string
}

func NewResultWriter(templatePath string) *ResultWriter {
	return &ResultWriter{
		view:         NewView(),
		templatePath: templatePath,
	}
}

func (writer *ResultWriter) Write(w io.Writer, format OutputFormat, question string, result qa.Result) error {
	switch format {
	case OutputText:
		writer.view.RenderResult(w, result)
		writer.view.WriteFooter(w)
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("yaml.Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Close() > %w", err)
		}
	case OutputMarkdown:
		if err := assets.WriteAnswer(w, writer.templatePath, assets.AnswerTemplate{
			Question: question,
			Result:   result,
		}); err != nil {
			return fmt.Errorf("assets.WriteAnswer() > %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}
