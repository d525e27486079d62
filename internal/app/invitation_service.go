package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/event"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that InvitationService implements ports.InvitationService.
var _ ports.InvitationService = (*InvitationService)(nil)

// InvitationService implements ports.InvitationService. Transitions are
// computed by the invitation entity and persisted with a conditional write,
// so two concurrent decisions cannot both succeed.
type InvitationService struct {
	invitations ports.InvitationRepository
	publisher   ports.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewInvitationService creates an InvitationService.
func NewInvitationService(invitations ports.InvitationRepository, publisher ports.EventPublisher, logger *slog.Logger) *InvitationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InvitationService{
		invitations: invitations,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// SendInvitation records a new PENDING invitation.
func (s *InvitationService) SendInvitation(ctx context.Context, in ports.SendInvitationInput) (*ports.InvitationResult, error) {
	s.logger.InfoContext(ctx, "sending invitation",
		slog.Int64("stage_id", in.StageID),
		slog.Int64("inviter_id", in.InviterID),
		slog.Int64("invited_id", in.InvitedID),
	)

	inv, err := invitation.New(in.StageID, in.InviterID, in.InvitedID, in.Description, s.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.invitations.Save(ctx, &inv)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save invitation",
			slog.String("operation", "SendInvitation"),
			slog.Int64("stage_id", in.StageID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving invitation: %w", err)
	}

	return s.committed(ctx, saved), nil
}

// AcceptInvitation moves a PENDING invitation to ACCEPTED.
func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID, actingUserID int64) (*ports.InvitationResult, error) {
	s.logger.InfoContext(ctx, "accepting invitation",
		slog.Int64("id", invitationID),
		slog.Int64("user_id", actingUserID),
	)

	current, err := s.load(ctx, "AcceptInvitation", invitationID)
	if err != nil {
		return nil, err
	}

	next, err := current.Accept(actingUserID, s.now())
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, "AcceptInvitation", &next)
}

// DeclineInvitation moves a PENDING invitation to REJECTED. The reason is
// checked before the invitation is loaded.
func (s *InvitationService) DeclineInvitation(ctx context.Context, invitationID, actingUserID int64, reason string) (*ports.InvitationResult, error) {
	s.logger.InfoContext(ctx, "declining invitation",
		slog.Int64("id", invitationID),
		slog.Int64("user_id", actingUserID),
	)

	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "You can not decline invitation without cause!")
	}

	current, err := s.load(ctx, "DeclineInvitation", invitationID)
	if err != nil {
		return nil, err
	}

	next, err := current.Decline(actingUserID, reason, s.now())
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, "DeclineInvitation", &next)
}

// GetAllInvitationsForUserWithStatus lists invitations in status where
// teamMemberID is a participant.
func (s *InvitationService) GetAllInvitationsForUserWithStatus(ctx context.Context, teamMemberID int64, status invitation.Status) ([]invitation.Invitation, error) {
	s.logger.InfoContext(ctx, "listing invitations",
		slog.Int64("user_id", teamMemberID),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}

	invitations, err := s.invitations.FindByParticipantAndStatus(ctx, teamMemberID, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list invitations",
			slog.String("operation", "GetAllInvitationsForUserWithStatus"),
			slog.Int64("user_id", teamMemberID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invitations, nil
}

func (s *InvitationService) load(ctx context.Context, op string, id int64) (*invitation.Invitation, error) {
	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load invitation",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("loading invitation: %w", err)
	}
	return inv, nil
}

func (s *InvitationService) persist(ctx context.Context, op string, next *invitation.Invitation) (*ports.InvitationResult, error) {
	saved, err := s.invitations.Save(ctx, next)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save invitation",
			slog.String("operation", op),
			slog.Int64("id", next.ID),
			slog.String("status", next.Status.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving invitation: %w", err)
	}
	return s.committed(ctx, saved), nil
}

func (s *InvitationService) committed(ctx context.Context, saved *invitation.Invitation) *ports.InvitationResult {
	warnings := publishEvent(ctx, s.logger, s.publisher, event.NewInvitationChanged(*saved))
	return &ports.InvitationResult{Invitation: *saved, Warnings: warnings}
}
