package project

import (
	"strings"

	"github.com/jsamuelsen11/project-service/internal/domain/filter"
)

// Criteria holds optional filter criteria for listing projects.
// Zero-value fields mean "no filter" for that dimension.
type Criteria struct {
	Name       string
	Status     Status
	Visibility Visibility
}

// NameFilter keeps projects whose name contains Criteria.Name, ignoring case.
type NameFilter struct{}

func (NameFilter) IsApplicable(c Criteria) bool {
	return strings.TrimSpace(c.Name) != ""
}

func (NameFilter) Apply(items []Project, c Criteria) []Project {
	needle := strings.ToLower(strings.TrimSpace(c.Name))
	return filter.Where(items, func(p Project) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// StatusFilter keeps projects in Criteria.Status.
type StatusFilter struct{}

func (StatusFilter) IsApplicable(c Criteria) bool {
	return c.Status != ""
}

func (StatusFilter) Apply(items []Project, c Criteria) []Project {
	return filter.Where(items, func(p Project) bool { return p.Status == c.Status })
}

// VisibilityFilter keeps projects with Criteria.Visibility.
type VisibilityFilter struct{}

func (VisibilityFilter) IsApplicable(c Criteria) bool {
	return c.Visibility != ""
}

func (VisibilityFilter) Apply(items []Project, c Criteria) []Project {
	return filter.Where(items, func(p Project) bool { return p.Visibility == c.Visibility })
}

// DefaultFilters returns the project filters in their registration order.
func DefaultFilters() []filter.Filter[Project, Criteria] {
	return []filter.Filter[Project, Criteria]{
		NameFilter{},
		StatusFilter{},
		VisibilityFilter{},
	}
}

// NewPipeline builds the project pipeline from DefaultFilters.
func NewPipeline() *filter.Pipeline[Project, Criteria] {
	return filter.NewPipeline(DefaultFilters()...)
}
