// Package events holds the EventPublisher adapters: a structured-log sink and
// a broadcaster that hands every event to all configured sinks at once.
package events

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-service/internal/domain/event"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// LogSink records every event as an INFO log line. It never fails, which
// keeps an audit trail even when webhook delivery is down.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink writing to logger. When logger is nil the sink
// logs through the request-scoped logger carried by ctx.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Name implements Sink.
func (*LogSink) Name() string { return "log" }

// Publish implements ports.EventPublisher.
func (s *LogSink) Publish(ctx context.Context, e event.Event) error {
	logger := s.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger.InfoContext(ctx, "domain event",
		slog.String("kind", e.Kind()),
		slog.Time("occurred_at", e.At()),
		slog.Any("event", e),
	)
	return nil
}
