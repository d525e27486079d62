package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that InvitationRepository implements ports.InvitationRepository.
var _ ports.InvitationRepository = (*InvitationRepository)(nil)

const invitationColumns = `id, stage_id, inviter_id, invited_id, status, description, rejection_reason, created_at, updated_at`

// InvitationRepository stores stage invitations.
type InvitationRepository struct {
	store *Store
}

// FindByID returns domain.ErrNotFound for an unknown id.
func (r *InvitationRepository) FindByID(ctx context.Context, id int64) (*invitation.Invitation, error) {
	row := r.store.db.QueryRowContext(ctx,
		r.store.rebind(`SELECT `+invitationColumns+` FROM stage_invitations WHERE id = ?`), id)

	inv, err := scanInvitation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invitation %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get invitation %d: %w", id, err)
	}
	return &inv, nil
}

// FindByParticipantAndStatus lists invitations in status sent by or to userID.
func (r *InvitationRepository) FindByParticipantAndStatus(ctx context.Context, userID int64, status invitation.Status) ([]invitation.Invitation, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(`SELECT `+invitationColumns+` FROM stage_invitations
		WHERE (inviter_id = ? OR invited_id = ?) AND status = ?
		ORDER BY id`), userID, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	invitations := []invitation.Invitation{}
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invitations, nil
}

// Save inserts a new invitation, or records a decision on a PENDING one.
// The decision write only matches a row that is still PENDING, so of two
// racing decisions exactly one lands and the other gets a ConflictError.
func (r *InvitationRepository) Save(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error) {
	out := *inv
	if out.ID == 0 {
		id, err := r.store.nextID()
		if err != nil {
			return nil, err
		}
		out.ID = id
		if _, err := r.store.db.ExecContext(ctx, r.store.rebind(`INSERT INTO stage_invitations (`+invitationColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			out.ID, out.StageID, out.InviterID, out.InvitedID, string(out.Status),
			out.Description, out.RejectionReason, toMillis(out.CreatedAt), toMillis(out.UpdatedAt),
		); err != nil {
			return nil, fmt.Errorf("insert invitation: %w", err)
		}
		return &out, nil
	}

	res, err := r.store.db.ExecContext(ctx, r.store.rebind(`UPDATE stage_invitations
		SET status = ?, rejection_reason = ?, updated_at = ?
		WHERE id = ? AND status = ?`),
		string(out.Status), out.RejectionReason, toMillis(out.UpdatedAt), out.ID, string(invitation.StatusPending),
	)
	if err != nil {
		return nil, fmt.Errorf("update invitation %d: %w", out.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update invitation %d: %w", out.ID, err)
	}
	if n == 0 {
		current, err := r.FindByID(ctx, out.ID)
		if err != nil {
			return nil, err
		}
		return nil, &domain.ConflictError{
			Resource:   "invitation",
			ResourceID: strconv.FormatInt(out.ID, 10),
			Message:    fmt.Sprintf("already decided (%s)", current.Status),
		}
	}
	return &out, nil
}

func scanInvitation(row rowScanner) (invitation.Invitation, error) {
	var (
		inv                  invitation.Invitation
		status               string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&inv.ID, &inv.StageID, &inv.InviterID, &inv.InvitedID, &status,
		&inv.Description, &inv.RejectionReason, &createdAt, &updatedAt); err != nil {
		return invitation.Invitation{}, err
	}
	inv.Status = invitation.Status(status)
	inv.CreatedAt = fromMillis(createdAt)
	inv.UpdatedAt = fromMillis(updatedAt)
	return inv, nil
}
