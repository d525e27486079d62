package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// serveLogged runs req through Logging wrapped in the id middlewares and
// returns the captured log output.
func serveLogged(t *testing.T, req *http.Request, h http.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(h),
		),
	)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogging_AccessLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		path    string
		headers map[string]string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:   "created project",
			method: http.MethodPost,
			path:   "/api/v1/projects",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			want: []string{"request started", "request completed", "method=POST", "path=/api/v1/projects", "status=201", "duration="},
		},
		{
			name:   "implicit ok with body",
			method: http.MethodGet,
			path:   "/api/v1/vacancies/search",
			headers: map[string]string{
				middleware.HeaderUserID: "42",
			},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("[]\n"))
			},
			want: []string{"status=200", "bytes=3", "user_id=42"},
		},
		{
			name:   "missing invitation",
			method: http.MethodPost,
			path:   "/api/v1/invitations/9/accept",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: []string{"status=404", "path=/api/v1/invitations/9/accept"},
		},
		{
			name:   "propagated ids",
			method: http.MethodGet,
			path:   "/api/v1/projects",
			headers: map[string]string{
				"X-Request-ID":     "req-77",
				"X-Correlation-ID": "corr-77",
			},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: []string{"request_id=req-77", "correlation_id=corr-77"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			out := serveLogged(t, req, tt.handler)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("log output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestLogging_HandlerLogsAreCorrelated(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/3/invitations", http.NoBody)
	req.Header.Set("X-Request-ID", "req-inv")

	out := serveLogged(t, req, func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "invitation created")
		w.WriteHeader(http.StatusCreated)
	})

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.Contains(line, "invitation created") && !strings.Contains(line, "request_id=req-inv") {
			t.Errorf("handler log line not correlated: %s", line)
		}
	}
	if !strings.Contains(out, "invitation created") {
		t.Errorf("handler log line missing:\n%s", out)
	}
}

func TestLogging_DebugHeaderDumpRedactsCredentials(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Cookie", "session=abc")
	req.Header.Set("Accept", "application/json")

	out := serveLogged(t, req, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if strings.Contains(out, "secret-token") || strings.Contains(out, "session=abc") {
		t.Errorf("log output leaks credentials:\n%s", out)
	}
	for _, want := range []string{"request headers", "[REDACTED]", "application/json"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
