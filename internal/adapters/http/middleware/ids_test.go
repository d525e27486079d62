package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
)

func TestRequestID_GeneratesID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", gotID, err)
	}
	if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
		t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
	}
}

func TestRequestID_ExtractsFromHeader(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "incoming-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "incoming-123" {
		t.Errorf("RequestIDFromContext = %q, want %q", gotID, "incoming-123")
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 10 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	}
	if len(seen) != 10 {
		t.Errorf("unique IDs = %d, want 10", len(seen))
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		requestID     string
		correlationID string
		want          string
	}{
		{name: "reuses incoming header", requestID: "req-1", correlationID: "corr-1", want: "corr-1"},
		{name: "falls back to request id", requestID: "req-2", want: "req-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				}),
			))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.correlationID != "" {
				req.Header.Set("X-Correlation-ID", tt.correlationID)
			}
			handler.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", got, tt.want)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", h, tt.want)
			}
		})
	}
}

func TestIDs_EmptyContext(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	if got := middleware.RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", got)
	}
}
