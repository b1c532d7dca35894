// Package filters is the filter state manager: it owns the current
// selection, enforces the dependent-facet reset rules, and writes every
// field change straight through to durable storage.
package filters

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	"github.com/ImComy/Modaresy-sub002/internal/domain/taxonomy"
)

// Service manages the durable filter state.
type Service struct {
	repo   Repository
	logger *zap.Logger

	mu       sync.RWMutex
	state    domfil.State
	onChange func()
}

// New creates a filter state manager seeded from storage.
func New(ctx context.Context, repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		state:  repo.Load(ctx),
	}
}

// OnChange registers a callback invoked after every successful state
// mutation. Used by the search service to schedule a debounced fetch.
func (s *Service) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// State returns a copy of the current filter state.
func (s *Service) State() domfil.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SearchTerm returns the current free-text term.
func (s *Service) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SearchTerm
}

// SetSearchTerm updates and persists the free-text term.
func (s *Service) SetSearchTerm(ctx context.Context, term string) error {
	if err := s.repo.SaveSearchTerm(ctx, term); err != nil {
		return err
	}
	s.mutate(func(st *domfil.State) { st.SearchTerm = term })
	return nil
}

// SortBy returns the current sort mode.
func (s *Service) SortBy() domfil.SortBy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SortBy
}

// SetSortBy validates, persists and applies the sort mode.
func (s *Service) SetSortBy(ctx context.Context, sb domfil.SortBy) error {
	if !sb.IsValid() {
		return fmt.Errorf("sort mode %q: %w", sb, domain.ErrInvalidFilter)
	}
	if err := s.repo.SaveSortBy(ctx, sb); err != nil {
		return err
	}
	s.mutate(func(st *domfil.State) { st.SortBy = sb })
	return nil
}

// SetFacets replaces the whole facet selection, persisting each field.
func (s *Service) SetFacets(ctx context.Context, f domfil.Facets) error {
	if err := s.persistFacets(ctx, f); err != nil {
		return err
	}
	s.mutate(func(st *domfil.State) { st.Facets = f })
	return nil
}

func (s *Service) persistFacets(ctx context.Context, f domfil.Facets) error {
	fields := []struct {
		field string
		value string
	}{
		{domfil.FieldSubject, f.Subject},
		{domfil.FieldGrade, f.Grade},
		{domfil.FieldEducationSystem, f.EducationSystem},
		{domfil.FieldSector, f.Sector},
		{domfil.FieldLanguage, f.Language},
		{domfil.FieldGovernate, f.Governate},
		{domfil.FieldDistrict, f.District},
	}
	for _, fv := range fields {
		if err := s.repo.SaveFacet(ctx, fv.field, fv.value); err != nil {
			return err
		}
	}
	return nil
}

// HandleFilterChange applies a single-field facet change, clearing the
// narrower dependent facets when a broader one moves: a new education
// system resets grade, subject, sector and language; a new grade
// resets subject.
func (s *Service) HandleFilterChange(ctx context.Context, field, value string) error {
	s.mu.RLock()
	next := s.state.Facets
	s.mu.RUnlock()

	switch field {
	case domfil.FieldEducationSystem:
		next.EducationSystem = value
		next.Grade = taxonomy.None
		next.Subject = taxonomy.None
		next.Sector = taxonomy.All
		next.Language = taxonomy.All
	case domfil.FieldGrade:
		next.Grade = value
		next.Subject = taxonomy.None
	case domfil.FieldSubject:
		next.Subject = value
	case domfil.FieldSector:
		next.Sector = value
	case domfil.FieldLanguage:
		next.Language = value
	case domfil.FieldGovernate:
		next.Governate = value
	case domfil.FieldDistrict:
		next.District = value
	default:
		return fmt.Errorf("field %q: %w", field, domain.ErrInvalidFilter)
	}

	return s.SetFacets(ctx, next)
}

// SetEducationFromCombo decodes a combo value and atomically applies
// its system, sector and language while resetting grade and subject.
func (s *Service) SetEducationFromCombo(ctx context.Context, comboValue string) error {
	combo := taxonomy.DecodeCombo(comboValue)

	s.mu.RLock()
	next := s.state.Facets
	s.mu.RUnlock()

	next.EducationSystem = combo.System
	next.Sector = combo.Sector
	next.Language = combo.Language
	next.Grade = taxonomy.None
	next.Subject = taxonomy.None

	return s.SetFacets(ctx, next)
}

// SetRateRange persists and applies the price bounds; min and max are
// swapped if reversed.
func (s *Service) SetRateRange(ctx context.Context, min, max float64) error {
	if min > max {
		min, max = max, min
	}
	rr := [2]float64{min, max}
	if err := s.repo.SaveRateRange(ctx, rr); err != nil {
		return err
	}
	s.mutate(func(st *domfil.State) { st.RateRange = rr })
	return nil
}

// SetMinRating persists and applies the rating floor.
func (s *Service) SetMinRating(ctx context.Context, v float64) error {
	if v < 0 {
		v = 0
	}
	if err := s.repo.SaveMinRating(ctx, v); err != nil {
		return err
	}
	s.mutate(func(st *domfil.State) { st.MinRating = v })
	return nil
}

// Reset restores the documented defaults and persists them.
func (s *Service) Reset(ctx context.Context) error {
	def := domfil.Default()
	if err := s.repo.SaveSearchTerm(ctx, def.SearchTerm); err != nil {
		return err
	}
	if err := s.repo.SaveRateRange(ctx, def.RateRange); err != nil {
		return err
	}
	if err := s.repo.SaveMinRating(ctx, def.MinRating); err != nil {
		return err
	}
	if err := s.repo.SaveSortBy(ctx, def.SortBy); err != nil {
		return err
	}
	if err := s.persistFacets(ctx, def.Facets); err != nil {
		return err
	}
	s.mutate(func(st *domfil.State) { *st = def })
	return nil
}

// mutate applies fn under the lock and fires the change callback.
func (s *Service) mutate(fn func(*domfil.State)) {
	s.mu.Lock()
	fn(&s.state)
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb()
	}
}
