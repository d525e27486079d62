package invitation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
)

var testTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func pending(t *testing.T) invitation.Invitation {
	t.Helper()
	inv, err := invitation.New(5, 1, 2, "join the mapping stage", testTime)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	inv.ID = 100
	return inv
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stage     int64
		inviter   int64
		invited   int64
		wantErr   error
		wantField string
	}{
		{name: "valid", stage: 5, inviter: 1, invited: 2},
		{name: "zero stage", stage: 0, inviter: 1, invited: 2, wantErr: domain.ErrValidation, wantField: "stage_id"},
		{name: "negative inviter", stage: 5, inviter: -1, invited: 2, wantErr: domain.ErrValidation, wantField: "inviter_id"},
		{name: "zero invited", stage: 5, inviter: 1, invited: 0, wantErr: domain.ErrValidation, wantField: "invited_id"},
		{name: "self invite", stage: 5, inviter: 3, invited: 3, wantErr: domain.ErrBusinessRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv, err := invitation.New(tt.stage, tt.inviter, tt.invited, "  hi  ", testTime)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v, want nil", err)
				}
				if inv.Status != invitation.StatusPending {
					t.Errorf("Status = %q, want PENDING", inv.Status)
				}
				if inv.Description != "hi" {
					t.Errorf("Description = %q, want trimmed %q", inv.Description, "hi")
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantField != "" {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("errors.As(*ValidationError) = false, got %T", err)
				}
				if _, ok := verr.Fields[tt.wantField]; !ok {
					t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
				}
			}
		})
	}

	t.Run("self invite carries code", func(t *testing.T) {
		t.Parallel()
		_, err := invitation.New(5, 3, 3, "", testTime)
		var derr *domain.DomainError
		if !errors.As(err, &derr) {
			t.Fatalf("errors.As(*DomainError) = false, got %T", err)
		}
		if derr.Code != invitation.CodeSelfInvite {
			t.Errorf("Code = %q, want %q", derr.Code, invitation.CodeSelfInvite)
		}
	})
}

func TestInvitation_Accept(t *testing.T) {
	t.Parallel()

	t.Run("invitee accepts pending", func(t *testing.T) {
		t.Parallel()
		inv := pending(t)
		later := testTime.Add(time.Hour)

		got, err := inv.Accept(2, later)
		if err != nil {
			t.Fatalf("Accept() error = %v", err)
		}
		if got.Status != invitation.StatusAccepted {
			t.Errorf("Status = %q, want ACCEPTED", got.Status)
		}
		if !got.UpdatedAt.Equal(later) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, later)
		}
		if inv.Status != invitation.StatusPending {
			t.Errorf("receiver Status = %q, want unchanged PENDING", inv.Status)
		}
	})

	t.Run("inviter cannot accept", func(t *testing.T) {
		t.Parallel()
		inv := pending(t)

		_, err := inv.Accept(1, testTime)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Accept() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("accepted invitation conflicts", func(t *testing.T) {
		t.Parallel()
		inv := pending(t)
		inv.Status = invitation.StatusAccepted

		got, err := inv.Accept(2, testTime.Add(time.Hour))
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("Accept() error = %v, want ErrConflict", err)
		}
		if got != inv {
			t.Errorf("Accept() returned %+v, want unchanged %+v", got, inv)
		}
	})
}

func TestInvitation_Decline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     invitation.Status
		actor      int64
		reason     string
		wantErr    error
		wantStatus invitation.Status
	}{
		{
			name:       "invitee declines with reason",
			status:     invitation.StatusPending,
			actor:      2,
			reason:     "scheduling conflict",
			wantStatus: invitation.StatusRejected,
		},
		{
			name:    "stranger declines",
			status:  invitation.StatusPending,
			actor:   3,
			reason:  "scheduling conflict",
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "empty reason",
			status:  invitation.StatusPending,
			actor:   2,
			reason:  "",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "blank reason",
			status:  invitation.StatusPending,
			actor:   2,
			reason:  " \t\n",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "blank reason wins over wrong actor",
			status:  invitation.StatusPending,
			actor:   3,
			reason:  "",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "already rejected",
			status:  invitation.StatusRejected,
			actor:   2,
			reason:  "again",
			wantErr: domain.ErrConflict,
		},
		{
			name:    "already accepted",
			status:  invitation.StatusAccepted,
			actor:   2,
			reason:  "changed my mind",
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := pending(t)
			inv.Status = tt.status
			before := inv

			got, err := inv.Decline(tt.actor, tt.reason, testTime.Add(time.Minute))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decline() error = %v, want %v", err, tt.wantErr)
				}
				if got != before {
					t.Errorf("Decline() returned %+v, want unchanged %+v", got, before)
				}
				return
			}

			if err != nil {
				t.Fatalf("Decline() error = %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.RejectionReason != tt.reason {
				t.Errorf("RejectionReason = %q, want %q", got.RejectionReason, tt.reason)
			}
		})
	}
}

func TestMachine(t *testing.T) {
	t.Parallel()

	m := invitation.DefaultMachine

	if got := m.AvailableActions(invitation.StatusPending); len(got) != 2 {
		t.Errorf("AvailableActions(PENDING) = %v, want accept and decline", got)
	}
	for _, s := range []invitation.Status{invitation.StatusAccepted, invitation.StatusRejected} {
		if got := m.AvailableActions(s); len(got) != 0 {
			t.Errorf("AvailableActions(%s) = %v, want none", s, got)
		}
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
	}

	next, err := m.Next(1, invitation.StatusPending, invitation.ActionDecline)
	if err != nil || next != invitation.StatusRejected {
		t.Errorf("Next(PENDING, decline) = %q, %v; want REJECTED, nil", next, err)
	}

	if _, err := m.Next(1, invitation.StatusRejected, invitation.ActionAccept); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Next(REJECTED, accept) error = %v, want ErrConflict", err)
	}
}
