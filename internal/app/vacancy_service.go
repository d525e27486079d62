package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain/filter"
	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that VacancyService implements ports.VacancyService.
var _ ports.VacancyService = (*VacancyService)(nil)

// VacancyService implements ports.VacancyService.
type VacancyService struct {
	vacancies ports.VacancyRepository
	projects  ports.ProjectRepository
	filters   *filter.Pipeline[vacancy.Vacancy, vacancy.Criteria]
	logger    *slog.Logger
	now       func() time.Time
}

// NewVacancyService creates a VacancyService. A nil filters pipeline falls
// back to vacancy.NewPipeline.
func NewVacancyService(
	vacancies ports.VacancyRepository,
	projects ports.ProjectRepository,
	filters *filter.Pipeline[vacancy.Vacancy, vacancy.Criteria],
	logger *slog.Logger,
) *VacancyService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if filters == nil {
		filters = vacancy.NewPipeline()
	}
	return &VacancyService{
		vacancies: vacancies,
		projects:  projects,
		filters:   filters,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateVacancy opens a vacancy on a project requestUserID belongs to.
func (s *VacancyService) CreateVacancy(ctx context.Context, projectID int64, name string, requestUserID int64) (*vacancy.Vacancy, error) {
	s.logger.InfoContext(ctx, "creating vacancy",
		slog.Int64("project_id", projectID),
		slog.String("name", name),
	)

	v := &vacancy.Vacancy{
		Name:      strings.TrimSpace(name),
		ProjectID: projectID,
		CreatedAt: s.now(),
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if _, err := loadMemberProject(ctx, s.projects, projectID, requestUserID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "CreateVacancy"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	saved, err := s.vacancies.Save(ctx, v)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save vacancy",
			slog.String("operation", "CreateVacancy"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving vacancy: %w", err)
	}
	return saved, nil
}

// FindVacanciesByFilters narrows the vacancies of requestUserID's projects.
func (s *VacancyService) FindVacanciesByFilters(ctx context.Context, criteria vacancy.Criteria, requestUserID int64) ([]vacancy.Vacancy, error) {
	s.logger.InfoContext(ctx, "filtering vacancies",
		slog.Int64("user_id", requestUserID),
		slog.String("name", criteria.NamePattern),
		slog.Int64("project_id", criteria.ProjectID),
	)

	projects, err := s.projects.FindByOwnerOrMember(ctx, requestUserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "FindVacanciesByFilters"),
			slog.Int64("user_id", requestUserID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if len(projects) == 0 {
		return []vacancy.Vacancy{}, nil
	}

	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	vacancies, err := s.vacancies.FindByProjectIDs(ctx, ids)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list vacancies",
			slog.String("operation", "FindVacanciesByFilters"),
			slog.Int64("user_id", requestUserID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing vacancies: %w", err)
	}
	if vacancies == nil {
		vacancies = []vacancy.Vacancy{}
	}

	return s.filters.Run(vacancies, criteria)
}
