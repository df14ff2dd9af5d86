// Package session coordinates question submissions for a single user surface.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/at-ishikawa/samarth/internal/qa"
	"github.com/google/uuid"
)

//go:generate mockgen -source=coordinator.go -destination=../mocks/session/mock_asker.go -package=mock_session Asker

type Asker interface {
	Ask(ctx context.Context, question string) (qa.Result, error)
}

type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrInFlight      = errors.New("a question is already being answered")
)

// Snapshot is what a view renders. Result and ErrorMessage are never set together.
type Snapshot struct {
	State        State
	Question     string
	Result       *qa.Result
	ErrorMessage string
}

type Coordinator struct {
	asker Asker

	mu       sync.Mutex
	state    State
	question string
	result   *qa.Result
	errorMsg string
}

func NewCoordinator(asker Asker) *Coordinator {
	return &Coordinator{
		asker: asker,
		state: StateIdle,
	}
}

// Submit asks the question unless it is blank or another submission is pending.
// Rejected submissions leave the current state untouched.
func (c *Coordinator) Submit(ctx context.Context, question string) (Snapshot, error) {
	if strings.TrimSpace(question) == "" {
		return c.Snapshot(), ErrEmptyQuestion
	}

	c.mu.Lock()
	if c.state == StatePending {
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		return snapshot, ErrInFlight
	}
	c.state = StatePending
	c.question = question
	c.result = nil
	c.errorMsg = ""
	c.mu.Unlock()

	submissionID := uuid.NewString()
	logger := slog.Default().With("submissionID", submissionID)
	logger.Info("question submitted", "question", question)

	result, err := c.asker.Ask(ctx, question)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.errorMsg = qa.UserMessage(err)
	} else {
		c.state = StateSucceeded
		c.result = &result
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		logger.Error("question failed", "error", err)
	} else {
		logger.Info("question answered",
			"summaryPoints", len(result.SummaryPoints),
			"sources", len(result.Sources),
		)
	}
	return snapshot, nil
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Coordinator) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		State:        c.state,
		Question:     c.question,
		ErrorMessage: c.errorMsg,
	}
	if c.result != nil {
		result := *c.result
		snapshot.Result = &result
	}
	return snapshot
}
