// Package vacancy holds the Vacancy entity and the filters over vacancy
// listings.
package vacancy

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/filter"
)

// Vacancy is an open position on a project team.
type Vacancy struct {
	ID        int64
	Name      string
	ProjectID int64
	CreatedAt time.Time
}

// Validate checks business rules for the Vacancy entity.
func (v *Vacancy) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(v.Name) == "" {
		fields["name"] = "is required"
	}
	if v.ProjectID <= 0 {
		fields["project_id"] = fmt.Sprintf("must be positive, got %d", v.ProjectID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Criteria holds optional filter criteria for listing vacancies.
// Zero-value fields mean "no filter" for that dimension.
type Criteria struct {
	NamePattern string
	ProjectID   int64
}

// NameFilter keeps vacancies whose name equals Criteria.NamePattern exactly.
type NameFilter struct{}

func (NameFilter) IsApplicable(c Criteria) bool {
	return c.NamePattern != ""
}

func (NameFilter) Apply(items []Vacancy, c Criteria) []Vacancy {
	return filter.Where(items, func(v Vacancy) bool { return v.Name == c.NamePattern })
}

// ProjectFilter keeps vacancies of Criteria.ProjectID.
type ProjectFilter struct{}

func (ProjectFilter) IsApplicable(c Criteria) bool {
	return c.ProjectID > 0
}

func (ProjectFilter) Apply(items []Vacancy, c Criteria) []Vacancy {
	return filter.Where(items, func(v Vacancy) bool { return v.ProjectID == c.ProjectID })
}

// DefaultFilters returns the vacancy filters in their registration order.
func DefaultFilters() []filter.Filter[Vacancy, Criteria] {
	return []filter.Filter[Vacancy, Criteria]{NameFilter{}, ProjectFilter{}}
}

// NewPipeline builds the vacancy pipeline from DefaultFilters.
func NewPipeline() *filter.Pipeline[Vacancy, Criteria] {
	return filter.NewPipeline(DefaultFilters()...)
}
