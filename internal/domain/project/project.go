// Package project holds the Project aggregate, its partial-update patch, and
// the filters used to narrow project listings.
package project

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Project is a collaborative engineering project owned by one user and shared
// with a team. MaxStorageSize is fixed when the project is created.
type Project struct {
	ID             int64
	Name           string
	Description    string
	OwnerID        int64
	Status         Status
	Visibility     Visibility
	MaxStorageSize int64
	TeamMemberIDs  []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = msgRequired
	}
	if p.OwnerID <= 0 {
		fields["owner_id"] = fmt.Sprintf("must be positive, got %d", p.OwnerID)
	}
	if !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}
	if !p.Visibility.IsValid() {
		fields["visibility"] = fmt.Sprintf("invalid: %q", p.Visibility)
	}
	if p.MaxStorageSize < 0 {
		fields["max_storage_size"] = fmt.Sprintf("must not be negative, got %d", p.MaxStorageSize)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsMember reports whether userID is the owner or on the project team.
func (p *Project) IsMember(userID int64) bool {
	return p.OwnerID == userID || slices.Contains(p.TeamMemberIDs, userID)
}

// Patch is a partial update. A nil field means "leave unchanged"; only the
// description and status of a project may be patched.
type Patch struct {
	Description *string
	Status      *Status
}

// IsEmpty reports whether the patch changes nothing.
func (pt Patch) IsEmpty() bool {
	return pt.Description == nil && pt.Status == nil
}

// Validate checks the values the patch would write.
func (pt Patch) Validate() error {
	if pt.Status != nil && !pt.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", *pt.Status))
	}
	return nil
}

// ApplyTo writes the non-nil patch fields onto p.
func (pt Patch) ApplyTo(p *Project) {
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
}
