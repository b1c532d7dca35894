package modaresy

import (
	"context"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	filtersuc "github.com/ImComy/Modaresy-sub002/internal/usecase/filters"
)

// FilterService reads and mutates the durable filter state. Every
// setter persists before mutating, so a storage failure leaves both
// the stored and the in-memory state unchanged.
type FilterService struct {
	svc *filtersuc.Service
}

// State returns a snapshot of the current selection.
func (f *FilterService) State() FilterState {
	return fromState(f.svc.State())
}

// Ready reports whether the selection is concrete enough for results
// to be treated as final: both subject and grade must be chosen.
func (f *FilterService) Ready() bool {
	st := f.svc.State()
	return st.Ready()
}

// SetSearchTerm updates the free-text search term.
func (f *FilterService) SetSearchTerm(ctx context.Context, term string) error {
	return f.svc.SetSearchTerm(ctx, term)
}

// Set changes a single facet field by name. Changing the education
// system resets grade and subject and realigns sector and language;
// changing the grade resets the subject.
func (f *FilterService) Set(ctx context.Context, field, value string) error {
	return f.svc.HandleFilterChange(ctx, field, value)
}

// SetFacets replaces the whole facet selection at once, without the
// dependent resets Set applies.
func (f *FilterService) SetFacets(ctx context.Context, facets Facets) error {
	return f.svc.SetFacets(ctx, toFacets(facets))
}

// SetEducation applies a combined system/sector/language selection,
// as produced by FacetService.Combos.
func (f *FilterService) SetEducation(ctx context.Context, comboValue string) error {
	return f.svc.SetEducationFromCombo(ctx, comboValue)
}

// SetRateRange updates the price bounds. Reversed bounds are swapped.
func (f *FilterService) SetRateRange(ctx context.Context, min, max float64) error {
	return f.svc.SetRateRange(ctx, min, max)
}

// SetMinRating updates the minimum rating. Negative values clamp to zero.
func (f *FilterService) SetMinRating(ctx context.Context, v float64) error {
	return f.svc.SetMinRating(ctx, v)
}

// SetSortBy updates the result ordering.
func (f *FilterService) SetSortBy(ctx context.Context, sb SortBy) error {
	return f.svc.SetSortBy(ctx, domfil.SortBy(sb))
}

// Reset restores every field to its default and persists the defaults.
func (f *FilterService) Reset(ctx context.Context) error {
	return f.svc.Reset(ctx)
}
