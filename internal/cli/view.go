package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/samarth/internal/qa"
	"github.com/at-ishikawa/samarth/internal/session"
	"github.com/fatih/color"
)

const (
	headerTitle   = "Project Samarth"
	headerTagline = "Intelligent Q&A over Indian agricultural and climate data"
	footerText    = "Project Samarth | Powered by data.gov.in"
)

// View writes the header, result and footer of the terminal surface
type View struct {
	title   *color.Color
	bold    *color.Color
	faint   *color.Color
	errorBG *color.Color
}

func NewView() *View {
	return &View{
		title:   color.New(color.Bold, color.FgGreen),
		bold:    color.New(color.Bold),
		faint:   color.New(color.Faint),
		errorBG: color.New(color.FgWhite, color.BgRed, color.Bold),
	}
}

func (v *View) WriteHeader(w io.Writer) {
	_, _ = v.title.Fprintln(w, headerTitle)
	_, _ = v.faint.Fprintln(w, headerTagline)
	_, _ = fmt.Fprintln(w)
}

func (v *View) WriteFooter(w io.Writer) {
	_, _ = fmt.Fprintln(w)
	_, _ = v.faint.Fprintln(w, footerText)
}

// RenderSnapshot writes the view for the snapshot state. An idle snapshot writes nothing.
func (v *View) RenderSnapshot(w io.Writer, snapshot session.Snapshot) {
	switch snapshot.State {
	case session.StatePending:
		_, _ = v.faint.Fprintln(w, "Analyzing...")
	case session.StateFailed:
		_, _ = v.errorBG.Fprintf(w, " Error: %s ", snapshot.ErrorMessage)
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w)
	case session.StateSucceeded:
		if snapshot.Result != nil {
			v.RenderResult(w, *snapshot.Result)
		}
	}
}

func (v *View) RenderResult(w io.Writer, result qa.Result) {
	_, _ = fmt.Fprintln(w)
	_, _ = v.bold.Fprintln(w, "Analysis")
	_, _ = fmt.Fprintln(w, result.Analysis)

	if len(result.SummaryPoints) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = v.bold.Fprintln(w, "Key Insights")
		for _, point := range result.SummaryPoints {
			_, _ = fmt.Fprintf(w, "  - %s\n", point)
		}
	}

	if len(result.Sources) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = v.bold.Fprintln(w, "Sources")
		for i, source := range result.Sources {
			_, _ = fmt.Fprintf(w, "  %d. %s <%s>\n", i+1, source.SourceName, source.Description)
		}
	}
	_, _ = fmt.Fprintln(w)
}
