package events

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-service/internal/app/fanout"
	"github.com/jsamuelsen11/project-service/internal/domain/event"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time interface check.
var _ ports.EventPublisher = (*Broadcast)(nil)

// Sink is a named event destination.
type Sink interface {
	ports.EventPublisher
	Name() string
}

// Broadcast publishes each event to every sink concurrently. It reports
// failure when any sink fails; sinks that succeeded are not retried or undone.
type Broadcast struct {
	sinks   []Sink
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBroadcast creates a publisher over sinks. metrics may be nil.
func NewBroadcast(metrics *telemetry.Metrics, logger *slog.Logger, sinks ...Sink) *Broadcast {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Broadcast{sinks: sinks, metrics: metrics, logger: logger}
}

// Publish implements ports.EventPublisher.
func (b *Broadcast) Publish(ctx context.Context, e event.Event) error {
	err := fanout.Each(ctx, len(b.sinks), b.sinks, func(ctx context.Context, s Sink) error {
		err := s.Publish(ctx, e)
		b.record(ctx, s.Name(), e.Kind(), err)
		if err != nil {
			b.logger.WarnContext(ctx, "event sink failed",
				slog.String("sink", s.Name()),
				slog.String("kind", e.Kind()),
				slog.Any("error", err),
			)
			return fmt.Errorf("sink %s: %w", s.Name(), err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("publishing %s: %w", e.Kind(), err)
	}
	return nil
}

func (b *Broadcast) record(ctx context.Context, sink, kind string, err error) {
	if b.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	b.metrics.EventPublishTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEventSink.String(sink),
		telemetry.AttrEventKind.String(kind),
		telemetry.AttrResult.String(result),
	))
}
