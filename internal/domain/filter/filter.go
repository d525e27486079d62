// Package filter provides the generic narrowing pipeline used by listing
// operations. A Filter owns one criterion field; the Pipeline runs every
// applicable Filter in registration order.
package filter

import "github.com/jsamuelsen11/project-service/internal/domain"

// Filter narrows a slice of E using criteria C.
//
// IsApplicable must only report whether the filter's own criterion is present.
// Apply must return a subset of items without modifying items or its elements.
type Filter[E, C any] interface {
	IsApplicable(criteria C) bool
	Apply(items []E, criteria C) []E
}

// Pipeline is an ordered, immutable registry of filters over the same entity
// and criteria types.
type Pipeline[E, C any] struct {
	filters []Filter[E, C]
}

// NewPipeline creates a Pipeline that runs filters in the order given.
func NewPipeline[E, C any](filters ...Filter[E, C]) *Pipeline[E, C] {
	registered := make([]Filter[E, C], 0, len(filters))
	for _, f := range filters {
		if f != nil {
			registered = append(registered, f)
		}
	}
	return &Pipeline[E, C]{filters: registered}
}

// Len returns the number of registered filters.
func (p *Pipeline[E, C]) Len() int {
	return len(p.filters)
}

// Run applies every applicable filter to candidates and returns the survivors.
// A nil candidates slice is rejected with a *domain.ValidationError; an empty
// non-nil slice is valid and yields an empty result.
func (p *Pipeline[E, C]) Run(candidates []E, criteria C) ([]E, error) {
	if candidates == nil {
		return nil, domain.NewValidationError("candidates", "must not be nil")
	}

	working := candidates
	for _, f := range p.filters {
		if f.IsApplicable(criteria) {
			working = f.Apply(working, criteria)
		}
	}
	return working, nil
}

// Where returns a new slice holding the items for which keep reports true.
// The input slice is never written to, so callers can hand out the result
// without aliasing the candidates.
func Where[E any](items []E, keep func(E) bool) []E {
	out := make([]E, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
