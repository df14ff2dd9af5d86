package cli

import (
	"bytes"
	"testing"

	"github.com/at-ishikawa/samarth/internal/qa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{value: "text", want: OutputText},
		{value: "json", want: OutputJSON},
		{value: "yaml", want: OutputYAML},
		{value: "markdown", want: OutputMarkdown},
		{value: "xml", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultWriter_Write(t *testing.T) {
	disableColor(t)

	result := qa.Result{
		Analysis:      "Kerala receives more rain.",
		SummaryPoints: []string{"Kerala 3000mm"},
		Sources:       []qa.Source{{SourceName: "IMD", Description: "https://imd.gov.in"}},
	}

	tests := []struct {
		name   string
		format OutputFormat
		want   string
	}{
		{
			name:   "text",
			format: OutputText,
			want: `
Analysis
Kerala receives more rain.

Key Insights
  - Kerala 3000mm

Sources
  1. IMD <https://imd.gov.in>


Project Samarth | Powered by data.gov.in
`,
		},
		{
			name:   "json",
			format: OutputJSON,
			want: `{
  "analysis": "Kerala receives more rain.",
  "summaryPoints": [
    "Kerala 3000mm"
  ],
  "sources": [
    {
      "sourceName": "IMD",
      "description": "https://imd.gov.in"
    }
  ]
}
`,
		},
		{
			name:   "yaml",
			format: OutputYAML,
			want: `analysis: Kerala receives more rain.
summaryPoints:
  - Kerala 3000mm
sources:
  - sourceName: IMD
    description: https://imd.gov.in
`,
		},
		{
			name:   "markdown",
			format: OutputMarkdown,
			want: `# Rainfall?

## Analysis

Kerala receives more rain.

## Key Insights

- Kerala 3000mm

## Sources

1. [IMD](https://imd.gov.in)

---

Project Samarth | Powered by data.gov.in
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewResultWriter("").Write(&buf, tt.format, "Rainfall?", result)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewResultWriter("").Write(&buf, OutputFormat("xml"), "Rainfall?", result)
		assert.Error(t, err)
	})
}
