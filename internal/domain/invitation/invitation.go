// Package invitation models stage invitations: a team member (the inviter)
// asks another member (the invitee) to join a project stage, and the invitee
// accepts or declines exactly once.
package invitation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// CodeSelfInvite is the DomainError code for an inviter inviting themselves.
const CodeSelfInvite = "invitation.self_invite"

// Invitation is a stage invitation between an inviter and an invitee.
// RejectionReason is non-blank exactly when Status is REJECTED.
type Invitation struct {
	ID              int64
	StageID         int64
	InviterID       int64
	InvitedID       int64
	Status          Status
	Description     string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New returns a PENDING invitation after checking the send preconditions.
func New(stageID, inviterID, invitedID int64, description string, now time.Time) (Invitation, error) {
	fields := make(map[string]string)
	if stageID <= 0 {
		fields["stage_id"] = fmt.Sprintf("must be positive, got %d", stageID)
	}
	if inviterID <= 0 {
		fields["inviter_id"] = fmt.Sprintf("must be positive, got %d", inviterID)
	}
	if invitedID <= 0 {
		fields["invited_id"] = fmt.Sprintf("must be positive, got %d", invitedID)
	}
	if len(fields) > 0 {
		return Invitation{}, &domain.ValidationError{Fields: fields}
	}

	if inviterID == invitedID {
		return Invitation{}, &domain.DomainError{
			Code:    CodeSelfInvite,
			Message: fmt.Sprintf("user %d cannot invite themselves", inviterID),
		}
	}

	return Invitation{
		StageID:     stageID,
		InviterID:   inviterID,
		InvitedID:   invitedID,
		Status:      StatusPending,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsParticipant reports whether userID is the inviter or the invitee.
func (inv Invitation) IsParticipant(userID int64) bool {
	return inv.InviterID == userID || inv.InvitedID == userID
}

// Accept returns a copy of inv moved to ACCEPTED. The receiver is never
// modified, so a failed call leaves the stored record untouched.
func (inv Invitation) Accept(actorID int64, now time.Time) (Invitation, error) {
	return inv.transition(ActionAccept, actorID, "", now)
}

// Decline returns a copy of inv moved to REJECTED with reason recorded.
// A blank reason is rejected before identity or state are looked at.
func (inv Invitation) Decline(actorID int64, reason string, now time.Time) (Invitation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return inv, domain.NewValidationError("reason", "You can not decline invitation without cause!")
	}
	return inv.transition(ActionDecline, actorID, reason, now)
}

func (inv Invitation) transition(action Action, actorID int64, reason string, now time.Time) (Invitation, error) {
	if actorID != inv.InvitedID {
		return inv, &domain.AuthorizationError{
			ActorID:    actorID,
			Resource:   "invitation",
			ResourceID: inv.ID,
			Reason:     "not invited",
		}
	}

	next, err := DefaultMachine.Next(inv.ID, inv.Status, action)
	if err != nil {
		return inv, err
	}

	out := inv
	out.Status = next
	out.RejectionReason = reason
	out.UpdatedAt = now
	return out, nil
}
