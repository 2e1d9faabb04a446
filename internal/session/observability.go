package session

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Op names a tracked session operation.
type Op string

const (
	OpGenerate       Op = "generate-plan"
	OpSaveOnboarding Op = "save-onboarding"
)

// OpEvent reports one finished session operation. The counters are typed per
// operation and stay zero where they do not apply: Project and TaskCount
// belong to OpGenerate, FieldsDone to OpSaveOnboarding.
type OpEvent struct {
	Op         Op
	StartedAt  time.Time
	Duration   time.Duration
	Err        error
	Project    string
	TaskCount  int
	FieldsDone int
}

// Observer receives session operation events.
type Observer interface {
	Observe(ctx context.Context, event OpEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, OpEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes session events as slog text lines to w. This is the
// NEXUS_DEBUG sink; a nil writer disables it.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event OpEvent) {
	attrs := []any{
		"op", string(event.Op),
		"duration_ms", event.Duration.Milliseconds(),
	}
	switch event.Op {
	case OpGenerate:
		attrs = append(attrs, "project", event.Project, "tasks", event.TaskCount)
	case OpSaveOnboarding:
		attrs = append(attrs, "fields_done", event.FieldsDone)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "session_op", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "session_op", attrs...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
