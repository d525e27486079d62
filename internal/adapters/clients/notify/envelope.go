package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain/event"
)

// envelope is the wire form of a domain event. ID doubles as the
// Idempotency-Key so the notifier can drop redelivered envelopes.
type envelope struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Source     string      `json:"source"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       event.Event `json:"data"`
}

// source names this service as the event producer.
const source = "project-service"

func toEnvelope(id uuid.UUID, e event.Event) envelope {
	return envelope{
		ID:         id.String(),
		Kind:       e.Kind(),
		Source:     source,
		OccurredAt: e.At().UTC(),
		Data:       e,
	}
}
