// Package notify delivers domain events to the notification service over
// HTTP. Delivery goes through the instrumented httpclient, so it inherits
// retry, circuit breaking, rate limiting and trace propagation.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain/event"
	"github.com/jsamuelsen11/project-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EventPublisher = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

// Client posts event envelopes to {base_url}{events_path}.
type Client struct {
	http       *httpclient.Client
	eventsPath string
	newID      func() uuid.UUID
	logger     *slog.Logger
}

// New creates a notifier client. A nil logger discards output.
func New(client *httpclient.Client, eventsPath string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http:       client,
		eventsPath: eventsPath,
		newID:      uuid.New,
		logger:     logger,
	}
}

// Publish sends e as a JSON envelope. Any 2xx response counts as delivered;
// a 409 means the notifier already holds this envelope and is treated the
// same way.
func (c *Client) Publish(ctx context.Context, e event.Event) error {
	env := toEnvelope(c.newID(), e)

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", env.Kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.http.BaseURL()+c.eventsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating notifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", env.ID)

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil && resp == nil {
		c.logger.ErrorContext(ctx, "event delivery failed",
			slog.String("operation", "notify.Publish"),
			slog.String("event_id", env.ID),
			slog.String("kind", env.Kind),
			slog.Any("error", err),
		)
		return fmt.Errorf("delivering %s event %s: %w", env.Kind, env.ID, err)
	}

	if isDelivered(resp.StatusCode) {
		c.logger.DebugContext(ctx, "event delivered",
			slog.String("event_id", env.ID),
			slog.String("kind", env.Kind),
			slog.Int("status", resp.StatusCode),
		)
		return nil
	}

	translated := TranslateHTTPError(resp)
	c.logger.ErrorContext(ctx, "event rejected",
		slog.String("operation", "notify.Publish"),
		slog.String("event_id", env.ID),
		slog.String("kind", env.Kind),
		slog.Int("status", resp.StatusCode),
		slog.Any("error", translated),
	)
	return fmt.Errorf("delivering %s event %s: %w", env.Kind, env.ID, translated)
}

// Name identifies the notifier in health results and event metrics.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state; no request is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func isDelivered(status int) bool {
	return (status >= http.StatusOK && status < http.StatusMultipleChoices) || status == http.StatusConflict
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
