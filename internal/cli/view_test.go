package cli

import (
	"bytes"
	"testing"

	"github.com/at-ishikawa/samarth/internal/qa"
	"github.com/at-ishikawa/samarth/internal/session"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func disableColor(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
}

func TestView_RenderSnapshot(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name     string
		snapshot session.Snapshot
		want     string
	}{
		{
			name:     "idle renders nothing",
			snapshot: session.Snapshot{State: session.StateIdle},
			want:     "",
		},
		{
			name:     "pending renders the loading placeholder",
			snapshot: session.Snapshot{State: session.StatePending, Question: "q"},
			want:     "Analyzing...\n",
		},
		{
			name: "failed renders the error banner",
			snapshot: session.Snapshot{
				State:        session.StateFailed,
				Question:     "q",
				ErrorMessage: "Your API key is not valid. Please check your configuration.",
			},
			want: " Error: Your API key is not valid. Please check your configuration. \n\n",
		},
		{
			name: "succeeded renders every section",
			snapshot: session.Snapshot{
				State:    session.StateSucceeded,
				Question: "q",
				Result: &qa.Result{
					Analysis:      "Wheat MSP is 2275.",
					SummaryPoints: []string{"Point A", "Point B"},
					Sources: []qa.Source{
						{SourceName: "agmarknet.gov.in", Description: "https://agmarknet.gov.in/x"},
						{SourceName: "PIB", Description: "https://pib.gov.in/y"},
					},
				},
			},
			want: `
Analysis
Wheat MSP is 2275.

Key Insights
  - Point A
  - Point B

Sources
  1. agmarknet.gov.in <https://agmarknet.gov.in/x>
  2. PIB <https://pib.gov.in/y>

`,
		},
		{
			name: "succeeded without insights or sources",
			snapshot: session.Snapshot{
				State:  session.StateSucceeded,
				Result: &qa.Result{Analysis: "No official data.", SummaryPoints: []string{}, Sources: []qa.Source{}},
			},
			want: "\nAnalysis\nNo official data.\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewView().RenderSnapshot(&buf, tt.snapshot)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestView_HeaderAndFooter(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	view := NewView()
	view.WriteHeader(&buf)
	view.WriteFooter(&buf)

	assert.Equal(t, "Project Samarth\n"+
		"Intelligent Q&A over Indian agricultural and climate data\n"+
		"\n"+
		"\n"+
		"Project Samarth | Powered by data.gov.in\n", buf.String())
}
