package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Event captures lightweight execution telemetry for a service operation:
// clock-ins, malformed schedule strings, dropped stale aggregations.
type Event struct {
	Name    string
	Success bool
	Err     error
	Fields  map[string]any
}

// Observer receives service events.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes service events to the provided writer at the given
// level ("debug", "info", "warn", "error").
func NewLogObserver(w io.Writer, level string) Observer {
	if w == nil {
		return NoopObserver{}
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event Event) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs, "event", event.Name, "success", event.Success)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "service_event", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_event", attrs...)
}

func observerOrNoop(obs Observer) Observer {
	if obs != nil {
		return obs
	}
	return NoopObserver{}
}

// nowOrDefault lets tests inject a deterministic clock.
func nowOrDefault(now func() time.Time) func() time.Time {
	if now != nil {
		return now
	}
	return time.Now
}
