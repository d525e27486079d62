package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// HeaderUserID carries the acting user's id. Authentication happens upstream;
// this service trusts the gateway that sets it.
const HeaderUserID = "X-User-Id"

const fieldUserID = "header.x-user-id"

type userIDKey struct{}

// WithUserID stores the acting user's id in ctx.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext returns the acting user's id and whether one is stored.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// ActingUser rejects requests without a positive integer X-User-Id with a 400
// problem response. Accepted ids are stored in the context, added to the
// request logger, and recorded on the active span.
func ActingUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw == "" {
				dto.WriteErrorResponse(w, r, domain.NewValidationError(fieldUserID, "is required"))
				return
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				dto.WriteErrorResponse(w, r, domain.NewValidationError(fieldUserID, "must be a positive integer"))
				return
			}

			ctx := WithUserID(r.Context(), id)
			ctx = logging.With(ctx, slog.Int64("user_id", id))
			trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("enduser.id", id))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
