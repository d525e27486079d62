package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// InvitationHandler handles the stage invitation workflow. The acting user
// is the inviter on send and must be the invitee on accept and decline.
type InvitationHandler struct {
	svc ports.InvitationService
}

// NewInvitationHandler creates a new InvitationHandler.
func NewInvitationHandler(svc ports.InvitationService) *InvitationHandler {
	return &InvitationHandler{svc: svc}
}

// SendInvitation handles POST /api/v1/invitations.
func (h *InvitationHandler) SendInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req dto.SendInvitationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.SendInvitation(r.Context(), req.ToInput(userID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToInvitationResultResponse(res))
}

// AcceptInvitation handles POST /api/v1/invitations/{id}/accept.
func (h *InvitationHandler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.AcceptInvitation(r.Context(), id, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvitationResultResponse(res))
}

// DeclineInvitation handles POST /api/v1/invitations/{id}/decline.
func (h *InvitationHandler) DeclineInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.DeclineInvitationRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}

	res, err := h.svc.DeclineInvitation(r.Context(), id, userID, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvitationResultResponse(res))
}

// ListInvitations handles GET /api/v1/invitations?status=PENDING. The status
// query parameter is required.
func (h *InvitationHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	status, err := dto.ParseInvitationStatus(r.URL.Query().Get("status"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	invs, err := h.svc.GetAllInvitationsForUserWithStatus(r.Context(), userID, status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvitationListResponse(invs))
}
