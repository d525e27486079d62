package ports

import (
	"context"

	"github.com/jsamuelsen11/project-service/internal/domain/event"
)

// EventPublisher delivers domain events to interested parties.
// Implemented by the log sink, the notifier client, and the broadcast
// publisher that combines them.
type EventPublisher interface {
	// Publish delivers e. An error means delivery failed; the change that
	// produced e has already committed and stays committed.
	Publish(ctx context.Context, e event.Event) error
}
