package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

const (
	ownerID   int64 = 1
	inviteeID int64 = 2
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request acting as userID, as middleware.ActingUser would.
func newRequest(method, target string, body io.Reader, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func validProject() project.Project {
	return project.Project{
		ID:             1,
		Name:           "Atlas",
		Description:    "mapping the monorepo",
		OwnerID:        ownerID,
		Status:         project.StatusCreated,
		Visibility:     project.VisibilityPublic,
		MaxStorageSize: 2 << 30,
		TeamMemberIDs:  []int64{inviteeID},
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

func pendingInvitation() invitation.Invitation {
	return invitation.Invitation{
		ID:        9,
		StageID:   5,
		InviterID: ownerID,
		InvitedID: inviteeID,
		Status:    invitation.StatusPending,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
