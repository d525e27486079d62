package ports

import (
	"context"

	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
)

// ProjectRepository persists projects and their team membership.
// Implemented by the storage adapter; called by the application layer.
type ProjectRepository interface {
	// FindByID returns a project with its team populated.
	// Returns domain.ErrNotFound if the project does not exist.
	FindByID(ctx context.Context, id int64) (*project.Project, error)

	// FindByOwnerOrMember returns the projects userID owns or is a team
	// member of, ordered by id.
	FindByOwnerOrMember(ctx context.Context, userID int64) ([]project.Project, error)

	// ExistsByOwnerAndName reports whether ownerID already has a project
	// called name.
	ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error)

	// FindAllByIDs returns the existing projects among ids. Unknown ids are
	// silently absent from the result.
	FindAllByIDs(ctx context.Context, ids []int64) ([]project.Project, error)

	// Save inserts p when p.ID is zero and updates it otherwise, returning the
	// stored entity. A duplicate (owner, name) is a *domain.ConflictError.
	Save(ctx context.Context, p *project.Project) (*project.Project, error)
}

// VacancyRepository persists project vacancies.
type VacancyRepository interface {
	// FindByProjectIDs returns the vacancies of the given projects.
	FindByProjectIDs(ctx context.Context, projectIDs []int64) ([]vacancy.Vacancy, error)

	// Save inserts a new vacancy and returns the stored entity.
	Save(ctx context.Context, v *vacancy.Vacancy) (*vacancy.Vacancy, error)
}

// InvitationRepository persists stage invitations.
type InvitationRepository interface {
	// FindByID returns domain.ErrNotFound if the invitation does not exist.
	FindByID(ctx context.Context, id int64) (*invitation.Invitation, error)

	// FindByParticipantAndStatus returns invitations in status where userID is
	// the inviter or the invitee.
	FindByParticipantAndStatus(ctx context.Context, userID int64, status invitation.Status) ([]invitation.Invitation, error)

	// Save inserts inv when inv.ID is zero. Otherwise it writes the decided
	// state only if the stored row is still PENDING; a lost race is a
	// *domain.ConflictError.
	Save(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error)
}
