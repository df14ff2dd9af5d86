package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/at-ishikawa/samarth/internal/qa"
)

const answerTemplateName = "answer.md.go.tmpl"

//go:embed templates/answer.md.go.tmpl
var fallbackAnswerTemplate string

// AnswerTemplate is the data passed to the answer template
type AnswerTemplate struct {
	Question string
	Result   qa.Result
}

// ParseAnswerTemplate parses the template at templatePath, or the embedded one
// when templatePath is empty or cannot be parsed.
func ParseAnswerTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, answerTemplateName, fallbackAnswerTemplate)
}

func WriteAnswer(output io.Writer, templatePath string, templateData AnswerTemplate) error {
	tmpl, err := ParseAnswerTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseAnswerTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
