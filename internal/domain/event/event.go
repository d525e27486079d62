// Package event defines the domain events emitted after state changes commit.
package event

import (
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
)

// Kinds are stable identifiers used by sinks to route events.
const (
	KindProjectCreated     = "project.created"
	KindInvitationSent     = "invitation.sent"
	KindInvitationAccepted = "invitation.accepted"
	KindInvitationRejected = "invitation.rejected"
)

// Event is a fact about a committed change.
type Event interface {
	Kind() string
	At() time.Time
}

// ProjectCreated is emitted once a new project has been saved.
type ProjectCreated struct {
	OwnerID    int64     `json:"owner_id"`
	ProjectID  int64     `json:"project_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (ProjectCreated) Kind() string    { return KindProjectCreated }
func (e ProjectCreated) At() time.Time { return e.OccurredAt }

// InvitationChanged is emitted when an invitation is sent or decided.
type InvitationChanged struct {
	InvitationID int64             `json:"invitation_id"`
	StageID      int64             `json:"stage_id"`
	InviterID    int64             `json:"inviter_id"`
	InvitedID    int64             `json:"invited_id"`
	Status       invitation.Status `json:"status"`
	OccurredAt   time.Time         `json:"occurred_at"`
}

// NewInvitationChanged snapshots inv into an event.
func NewInvitationChanged(inv invitation.Invitation) InvitationChanged {
	return InvitationChanged{
		InvitationID: inv.ID,
		StageID:      inv.StageID,
		InviterID:    inv.InviterID,
		InvitedID:    inv.InvitedID,
		Status:       inv.Status,
		OccurredAt:   inv.UpdatedAt,
	}
}

// Kind derives from Status: a PENDING invitation was just sent.
func (e InvitationChanged) Kind() string {
	switch e.Status {
	case invitation.StatusAccepted:
		return KindInvitationAccepted
	case invitation.StatusRejected:
		return KindInvitationRejected
	default:
		return KindInvitationSent
	}
}

func (e InvitationChanged) At() time.Time { return e.OccurredAt }
