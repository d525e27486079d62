package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/project-service/internal/domain/event"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// publishEvent hands e to publisher after a change has committed. A failure is
// logged and turned into a warning; the committed change is kept.
func publishEvent(ctx context.Context, logger *slog.Logger, publisher ports.EventPublisher, e event.Event) []ports.Warning {
	if err := publisher.Publish(ctx, e); err != nil {
		logger.WarnContext(ctx, "event not published",
			slog.String("kind", e.Kind()),
			slog.Any("error", err),
		)
		return []ports.Warning{{
			Code:    ports.WarningEventNotPublished,
			Message: fmt.Sprintf("%s event was not published: %v", e.Kind(), err),
		}}
	}
	return nil
}
