// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/event"
	"github.com/jsamuelsen11/project-service/internal/domain/filter"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the project
// repository. It enforces name uniqueness and team membership and publishes
// events after changes commit.
type ProjectService struct {
	projects       ports.ProjectRepository
	publisher      ports.EventPublisher
	filters        *filter.Pipeline[project.Project, project.Criteria]
	maxStorageSize int64
	logger         *slog.Logger
	now            func() time.Time
}

// NewProjectService creates a ProjectService. maxStorageSize is assigned to
// every project created through this service. A nil filters pipeline falls
// back to project.NewPipeline.
func NewProjectService(
	projects ports.ProjectRepository,
	publisher ports.EventPublisher,
	filters *filter.Pipeline[project.Project, project.Criteria],
	maxStorageSize int64,
	logger *slog.Logger,
) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if filters == nil {
		filters = project.NewPipeline()
	}
	return &ProjectService{
		projects:       projects,
		publisher:      publisher,
		filters:        filters,
		maxStorageSize: maxStorageSize,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateProject creates a project owned by requestUserID.
func (s *ProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput, requestUserID int64) (*ports.ProjectResult, error) {
	s.logger.InfoContext(ctx, "creating project",
		slog.String("name", in.Name),
		slog.Int64("owner_id", requestUserID),
	)

	now := s.now()
	p := &project.Project{
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		OwnerID:        requestUserID,
		Status:         cmp.Or(in.Status, project.StatusCreated),
		Visibility:     cmp.Or(in.Visibility, project.VisibilityPublic),
		MaxStorageSize: s.maxStorageSize,
		TeamMemberIDs:  teamWithoutOwner(in.TeamMemberIDs, requestUserID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.projects.ExistsByOwnerAndName(ctx, requestUserID, p.Name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check project name",
			slog.String("operation", "CreateProject"),
			slog.Int64("owner_id", requestUserID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("checking project name: %w", err)
	}
	if exists {
		return nil, &domain.ConflictError{
			Resource: "project",
			Message: fmt.Sprintf(
				"User ID %d is already a member of the team associated with the existing project.", requestUserID),
		}
	}

	saved, err := s.projects.Save(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save project",
			slog.String("operation", "CreateProject"),
			slog.Int64("owner_id", requestUserID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving project: %w", err)
	}

	warnings := publishEvent(ctx, s.logger, s.publisher, event.ProjectCreated{
		OwnerID:    saved.OwnerID,
		ProjectID:  saved.ID,
		OccurredAt: now,
	})

	return &ports.ProjectResult{Project: *saved, Warnings: warnings}, nil
}

// UpdateProject applies the non-nil fields of patch on behalf of a member.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID int64, patch project.Patch, requestUserID int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project",
		slog.Int64("id", projectID),
		slog.Int64("user_id", requestUserID),
	)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	p, err := loadMemberProject(ctx, s.projects, projectID, requestUserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "UpdateProject"),
			slog.Int64("id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if patch.IsEmpty() {
		return p, nil
	}

	patch.ApplyTo(p)
	p.UpdatedAt = s.now()

	saved, err := s.projects.Save(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save project",
			slog.String("operation", "UpdateProject"),
			slog.Int64("id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving project: %w", err)
	}

	return saved, nil
}

// GetProjectByID returns a project visible to requestUserID.
func (s *ProjectService) GetProjectByID(ctx context.Context, projectID, requestUserID int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project",
		slog.Int64("id", projectID),
		slog.Int64("user_id", requestUserID),
	)

	p, err := loadMemberProject(ctx, s.projects, projectID, requestUserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", "GetProjectByID"),
			slog.Int64("id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// GetAllProjects returns every project requestUserID owns or belongs to.
func (s *ProjectService) GetAllProjects(ctx context.Context, requestUserID int64) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects", slog.Int64("user_id", requestUserID))

	projects, err := s.memberProjects(ctx, "GetAllProjects", requestUserID)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FindAllProjectsByFilters narrows the user's projects through the project
// filter pipeline.
func (s *ProjectService) FindAllProjectsByFilters(ctx context.Context, criteria project.Criteria, requestUserID int64) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "filtering projects",
		slog.Int64("user_id", requestUserID),
		slog.String("name", criteria.Name),
		slog.String("status", criteria.Status.String()),
		slog.String("visibility", criteria.Visibility.String()),
	)

	projects, err := s.memberProjects(ctx, "FindAllProjectsByFilters", requestUserID)
	if err != nil {
		return nil, err
	}

	return s.filters.Run(projects, criteria)
}

// GetMomentProjects bulk-loads projects by id. All or nothing.
func (s *ProjectService) GetMomentProjects(ctx context.Context, projectIDs []int64) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "fetching projects by ids", slog.Int("count", len(projectIDs)))

	if len(projectIDs) == 0 {
		return []project.Project{}, nil
	}

	projects, err := s.projects.FindAllByIDs(ctx, projectIDs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch projects by ids",
			slog.String("operation", "GetMomentProjects"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	if len(projects) != len(projectIDs) {
		return nil, domain.NewValidationError("project_ids", "Project does not exist")
	}
	return projects, nil
}

func (s *ProjectService) memberProjects(ctx context.Context, op string, userID int64) ([]project.Project, error) {
	projects, err := s.projects.FindByOwnerOrMember(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", op),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects found for user %d: %w", userID, domain.ErrNotFound)
	}
	return projects, nil
}

// loadMemberProject loads a project and checks that userID is on its team.
func loadMemberProject(ctx context.Context, repo ports.ProjectRepository, projectID, userID int64) (*project.Project, error) {
	p, err := repo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}
	if !p.IsMember(userID) {
		return nil, &domain.AuthorizationError{
			ActorID:    userID,
			Resource:   "project",
			ResourceID: projectID,
			Reason:     "not a team member",
		}
	}
	return p, nil
}

// teamWithoutOwner returns the sorted, de-duplicated team ids excluding the owner.
func teamWithoutOwner(ids []int64, ownerID int64) []int64 {
	team := slices.DeleteFunc(slices.Clone(ids), func(id int64) bool { return id == ownerID })
	slices.Sort(team)
	return slices.Compact(team)
}
