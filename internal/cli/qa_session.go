package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/samarth/internal/session"
)

const (
	SampleQuestion = "What are the latest government schemes for farmers in Uttar Pradesh?"

	sampleCommand = ":sample"
)

// QuestionCLI asks one question per session round through the coordinator
type QuestionCLI struct {
	*InteractiveCLI
	coordinator *session.Coordinator
}

func NewQuestionCLI(stdin io.Reader, stdout io.Writer, coordinator *session.Coordinator) *QuestionCLI {
	return &QuestionCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		coordinator:    coordinator,
	}
}

// Start prints the header and the usage hint before the first round
func (r *QuestionCLI) Start() {
	r.view.WriteHeader(r.stdoutWriter)
	_, _ = fmt.Fprintf(r.stdoutWriter, "Type a question, %s for an example, or quit to exit.\n\n", sampleCommand)
}

func (r *QuestionCLI) Session(ctx context.Context) error {
	line, err := r.prompt("Question: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.view.WriteFooter(r.stdoutWriter)
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	question := strings.TrimSpace(line)
	switch strings.ToLower(question) {
	case "quit", "exit":
		r.view.WriteFooter(r.stdoutWriter)
		return errEnd
	case sampleCommand:
		question = SampleQuestion
		_, _ = fmt.Fprintf(r.stdoutWriter, "%s\n", question)
	}

	if question == "" {
		_, _ = fmt.Fprintln(r.stdoutWriter, "Please enter a question.")
		return nil
	}

	r.view.RenderSnapshot(r.stdoutWriter, session.Snapshot{
		State:    session.StatePending,
		Question: question,
	})
	snapshot, err := r.coordinator.Submit(ctx, question)
	if err != nil {
		if errors.Is(err, session.ErrEmptyQuestion) || errors.Is(err, session.ErrInFlight) {
			_, _ = fmt.Fprintf(r.stdoutWriter, "%s\n", err)
			return nil
		}
		return fmt.Errorf("coordinator.Submit() > %w", err)
	}
	r.view.RenderSnapshot(r.stdoutWriter, snapshot)
	return nil
}
