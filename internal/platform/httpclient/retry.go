package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// jitter spreads each delay uniformly over ±25%.
const jitter = 0.25

// RetryPolicy is exponential backoff with jitter, bounded by MaxInterval.
type RetryPolicy struct {
	MaxAttempts int
	Initial     time.Duration
	Max         time.Duration
	Multiplier  float64
}

// NewRetryPolicy converts cfg. MaxAttempts below 1 becomes 1.
func NewRetryPolicy(cfg config.RetryConfig) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: max(cfg.MaxAttempts, 1),
		Initial:     cfg.InitialInterval,
		Max:         cfg.MaxInterval,
		Multiplier:  cfg.Multiplier,
	}
}

// Backoff returns the wait before retry n (1 is the first retry). A positive
// retryAfter from the server wins when longer, still capped at Max.
func (p RetryPolicy) Backoff(n int, retryAfter time.Duration) time.Duration {
	base := float64(p.Initial) * math.Pow(p.Multiplier, float64(n-1))
	base = min(base, float64(p.Max))
	d := time.Duration(max(base+base*jitter*(2*rand.Float64()-1), 0)) //nolint:gosec // jitter, not security

	if retryAfter > d {
		d = min(retryAfter, p.Max)
	}
	return d
}

// send runs the attempt loop. It returns the final response, how many
// attempts were made and the error, if any. A retryable status on the last
// attempt is returned with its body open alongside the error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, int, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, 0, err
	}

	limit := 1
	if replayable(req) {
		limit = c.policy.MaxAttempts
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := 1; attempt <= limit; attempt++ {
		if attempt > 1 {
			delay := c.policy.Backoff(attempt-1, retryAfter)
			logging.FromContext(ctx).WarnContext(ctx, "retrying webhook request",
				slog.String("peer_service", c.peer),
				slog.String("method", req.Method),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", limit),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)
			if err := sleep(ctx, delay); err != nil {
				return nil, attempt - 1, err
			}
		}
		retryAfter = 0
		rewind(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if !transient(err) {
				return nil, attempt, err
			}
			lastErr = err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, attempt, nil
		}

		lastErr = fmt.Errorf("%s answered HTTP %d", c.peer, resp.StatusCode)
		if attempt == limit {
			return resp, attempt, lastErr
		}
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		discard(resp)
	}
	return nil, limit, lastErr
}

// replayable reports whether sending req twice is harmless.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(HeaderIdempotencyKey) != ""
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// transient reports whether a transport error is worth another attempt.
// Cancellation and deadline expiry are final.
func transient(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// parseRetryAfter accepts delay-seconds or an HTTP date. Anything missing,
// malformed or in the past yields zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
