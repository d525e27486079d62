package ports

import (
	"context"

	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
)

// ProjectService defines the service port for project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every caller-scoped operation receives the acting user's id.
type ProjectService interface {
	// CreateProject creates a project owned by requestUserID.
	// Returns a *domain.ConflictError if the owner already has a project with
	// the same name. A failed event publication is reported in
	// ProjectResult.Warnings, not as an error.
	CreateProject(ctx context.Context, in CreateProjectInput, requestUserID int64) (*ProjectResult, error)

	// UpdateProject applies the non-nil fields of patch.
	// Returns domain.ErrNotFound if the project does not exist and a
	// *domain.AuthorizationError if requestUserID is not a member.
	UpdateProject(ctx context.Context, projectID int64, patch project.Patch, requestUserID int64) (*project.Project, error)

	// GetProjectByID returns a single project visible to requestUserID.
	GetProjectByID(ctx context.Context, projectID, requestUserID int64) (*project.Project, error)

	// GetAllProjects returns every project requestUserID owns or belongs to.
	// Returns domain.ErrNotFound when there are none.
	GetAllProjects(ctx context.Context, requestUserID int64) ([]project.Project, error)

	// FindAllProjectsByFilters narrows the user's projects by criteria.
	// A zero-value Criteria returns the full membership list.
	FindAllProjectsByFilters(ctx context.Context, criteria project.Criteria, requestUserID int64) ([]project.Project, error)

	// GetMomentProjects bulk-loads projects by id. If any id is unknown the
	// whole call fails with a *domain.ValidationError and no partial list.
	GetMomentProjects(ctx context.Context, projectIDs []int64) ([]project.Project, error)
}

// CreateProjectInput carries the caller-supplied fields of a new project.
// Zero Status and Visibility fall back to CREATED and PUBLIC.
type CreateProjectInput struct {
	Name          string
	Description   string
	Status        project.Status
	Visibility    project.Visibility
	TeamMemberIDs []int64
}

// InvitationService defines the service port for the stage invitation workflow.
type InvitationService interface {
	// SendInvitation records a new PENDING invitation.
	SendInvitation(ctx context.Context, in SendInvitationInput) (*InvitationResult, error)

	// AcceptInvitation moves a PENDING invitation to ACCEPTED on behalf of
	// the invitee.
	AcceptInvitation(ctx context.Context, invitationID, actingUserID int64) (*InvitationResult, error)

	// DeclineInvitation moves a PENDING invitation to REJECTED with a
	// mandatory reason.
	DeclineInvitation(ctx context.Context, invitationID, actingUserID int64, reason string) (*InvitationResult, error)

	// GetAllInvitationsForUserWithStatus lists invitations in status where
	// teamMemberID is the inviter or the invitee.
	GetAllInvitationsForUserWithStatus(ctx context.Context, teamMemberID int64, status invitation.Status) ([]invitation.Invitation, error)
}

// SendInvitationInput identifies the stage and both parties of an invitation.
type SendInvitationInput struct {
	StageID     int64
	InviterID   int64
	InvitedID   int64
	Description string
}

// VacancyService defines the service port for project vacancies.
type VacancyService interface {
	// CreateVacancy opens a vacancy on a project the user belongs to.
	CreateVacancy(ctx context.Context, projectID int64, name string, requestUserID int64) (*vacancy.Vacancy, error)

	// FindVacanciesByFilters narrows the vacancies of the user's projects.
	FindVacanciesByFilters(ctx context.Context, criteria vacancy.Criteria, requestUserID int64) ([]vacancy.Vacancy, error)
}

// Warning reports a non-fatal problem that happened after a change committed.
type Warning struct {
	Code    string
	Message string
}

// WarningEventNotPublished is the Warning code for a failed event publication.
const WarningEventNotPublished = "event_not_published"

// ProjectResult holds a committed project and any post-commit warnings.
type ProjectResult struct {
	Project  project.Project
	Warnings []Warning
}

// InvitationResult holds a committed invitation and any post-commit warnings.
type InvitationResult struct {
	Invitation invitation.Invitation
	Warnings   []Warning
}
