package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/ports"
	"github.com/jsamuelsen11/project-service/mocks"
)

func newInvitationHandler(t *testing.T) (*handlers.InvitationHandler, *mocks.MockInvitationService) {
	t.Helper()
	svc := mocks.NewMockInvitationService(t)
	return handlers.NewInvitationHandler(svc), svc
}

func invitationRequest(method, target string, body *bytes.Buffer, userID int64) *http.Request {
	var req *http.Request
	if body == nil {
		req = newRequest(method, target, http.NoBody, userID)
	} else {
		req = newRequest(method, target, body, userID)
	}
	return withChiParams(req, map[string]string{"id": "9"})
}

// --- SendInvitation ---

func TestSendInvitation_InviterIsActingUser(t *testing.T) {
	t.Parallel()
	h, svc := newInvitationHandler(t)

	svc.EXPECT().SendInvitation(mock.Anything, ports.SendInvitationInput{
		StageID:     5,
		InviterID:   ownerID,
		InvitedID:   inviteeID,
		Description: "join mapping",
	}).Return(&ports.InvitationResult{Invitation: pendingInvitation()}, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.SendInvitationRequest{StageID: 5, InvitedID: inviteeID, Description: "join mapping"})
	h.SendInvitation(rec, newRequest(http.MethodPost, "/api/v1/invitations", body, ownerID))

	requireStatus(t, rec, http.StatusCreated)
	if resp := decodeJSON[dto.InvitationResponse](t, rec); resp.Status != "PENDING" {
		t.Errorf("Status = %q, want PENDING", resp.Status)
	}
}

func TestSendInvitation_SelfInvite(t *testing.T) {
	t.Parallel()
	h, svc := newInvitationHandler(t)

	svc.EXPECT().SendInvitation(mock.Anything, mock.Anything).
		Return(nil, &domain.DomainError{Code: invitation.CodeSelfInvite, Message: "user 1 cannot invite themselves"})

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.SendInvitationRequest{StageID: 5, InvitedID: ownerID})
	h.SendInvitation(rec, newRequest(http.MethodPost, "/api/v1/invitations", body, ownerID))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Code != invitation.CodeSelfInvite {
		t.Errorf("Code = %q, want %q", resp.Code, invitation.CodeSelfInvite)
	}
}

func TestSendInvitation_MissingStage(t *testing.T) {
	t.Parallel()
	h, _ := newInvitationHandler(t)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.SendInvitationRequest{InvitedID: inviteeID})
	h.SendInvitation(rec, newRequest(http.MethodPost, "/api/v1/invitations", body, ownerID))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- AcceptInvitation ---

func TestAcceptInvitation_Success(t *testing.T) {
	t.Parallel()
	h, svc := newInvitationHandler(t)

	accepted := pendingInvitation()
	accepted.Status = invitation.StatusAccepted
	svc.EXPECT().AcceptInvitation(mock.Anything, int64(9), inviteeID).
		Return(&ports.InvitationResult{Invitation: accepted}, nil)

	rec := httptest.NewRecorder()
	h.AcceptInvitation(rec, invitationRequest(http.MethodPost, "/api/v1/invitations/9/accept", nil, inviteeID))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.InvitationResponse](t, rec); resp.Status != "ACCEPTED" {
		t.Errorf("Status = %q, want ACCEPTED", resp.Status)
	}
}

func TestAcceptInvitation_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"not the invitee", &domain.AuthorizationError{ActorID: ownerID, Resource: "invitation", ResourceID: 9, Reason: "not invited"}, http.StatusForbidden},
		{"already decided", &domain.ConflictError{Resource: "invitation", ResourceID: "9", Message: "already decided (REJECTED)"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newInvitationHandler(t)

			svc.EXPECT().AcceptInvitation(mock.Anything, int64(9), ownerID).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.AcceptInvitation(rec, invitationRequest(http.MethodPost, "/api/v1/invitations/9/accept", nil, ownerID))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- DeclineInvitation ---

func TestDeclineInvitation_Success(t *testing.T) {
	t.Parallel()
	h, svc := newInvitationHandler(t)

	rejected := pendingInvitation()
	rejected.Status = invitation.StatusRejected
	rejected.RejectionReason = "busy this quarter"
	svc.EXPECT().DeclineInvitation(mock.Anything, int64(9), inviteeID, "busy this quarter").
		Return(&ports.InvitationResult{
			Invitation: rejected,
			Warnings:   []ports.Warning{{Code: ports.WarningEventNotPublished, Message: "invitation.rejected event was not published"}},
		}, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, dto.DeclineInvitationRequest{Reason: "busy this quarter"})
	h.DeclineInvitation(rec, invitationRequest(http.MethodPost, "/api/v1/invitations/9/decline", body, inviteeID))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.InvitationResponse](t, rec)
	if resp.RejectionReason != "busy this quarter" {
		t.Errorf("RejectionReason = %q", resp.RejectionReason)
	}
	if len(resp.Warnings) != 1 {
		t.Errorf("Warnings = %v, want the publish warning", resp.Warnings)
	}
}

func TestDeclineInvitation_EmptyBodyReachesDomainRule(t *testing.T) {
	t.Parallel()
	h, svc := newInvitationHandler(t)

	svc.EXPECT().DeclineInvitation(mock.Anything, int64(9), inviteeID, "").
		Return(nil, domain.NewValidationError("reason", "You can not decline invitation without cause!"))

	rec := httptest.NewRecorder()
	h.DeclineInvitation(rec, invitationRequest(http.MethodPost, "/api/v1/invitations/9/decline", nil, inviteeID))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Message != "You can not decline invitation without cause!" {
		t.Errorf("Errors = %+v, want the missing cause message", resp.Errors)
	}
}

func TestDeclineInvitation_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newInvitationHandler(t)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"reason":`)
	h.DeclineInvitation(rec, invitationRequest(http.MethodPost, "/api/v1/invitations/9/decline", body, inviteeID))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- ListInvitations ---

func TestListInvitations_Success(t *testing.T) {
	t.Parallel()
	h, svc := newInvitationHandler(t)

	svc.EXPECT().GetAllInvitationsForUserWithStatus(mock.Anything, inviteeID, invitation.StatusPending).
		Return([]invitation.Invitation{pendingInvitation()}, nil)

	rec := httptest.NewRecorder()
	h.ListInvitations(rec, newRequest(http.MethodGet, "/api/v1/invitations?status=pending", nil, inviteeID))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.InvitationListResponse](t, rec); resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListInvitations_BadStatus(t *testing.T) {
	t.Parallel()
	h, _ := newInvitationHandler(t)

	for _, target := range []string{"/api/v1/invitations", "/api/v1/invitations?status=EXPIRED"} {
		rec := httptest.NewRecorder()
		h.ListInvitations(rec, newRequest(http.MethodGet, target, nil, inviteeID))

		requireStatus(t, rec, http.StatusBadRequest)
	}
}
