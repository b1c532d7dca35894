// Package filters persists filter state field by field in the durable
// key/value store. Each field writes under its own stable key on every
// change; startup reads the same keys one at a time, so one corrupt
// value never costs the rest of the state.
package filters

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
)

// store is the consumer interface for persistence operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store reads and writes filter state over the kv facade.
type Store struct {
	store store
}

// New creates a filter-state store.
func New(s store) *Store {
	return &Store{store: s}
}

// facetKeys maps field names to their storage keys.
var facetKeys = map[string]string{
	domfil.FieldSubject:         domfil.KeySubject,
	domfil.FieldGrade:           domfil.KeyGrade,
	domfil.FieldEducationSystem: domfil.KeyEducationSystem,
	domfil.FieldSector:          domfil.KeySector,
	domfil.FieldLanguage:        domfil.KeyLanguage,
	domfil.FieldGovernate:       domfil.KeyGovernate,
	domfil.FieldDistrict:        domfil.KeyDistrict,
}

// Load restores the persisted state, substituting the documented
// default for any field that is missing or malformed.
func (s *Store) Load(ctx context.Context) domfil.State {
	state := domfil.Default()

	if v, ok := s.getString(ctx, domfil.KeySearchTerm); ok {
		state.SearchTerm = v
	}
	s.loadFacet(ctx, domfil.KeySubject, &state.Facets.Subject)
	s.loadFacet(ctx, domfil.KeyGrade, &state.Facets.Grade)
	s.loadFacet(ctx, domfil.KeyEducationSystem, &state.Facets.EducationSystem)
	s.loadFacet(ctx, domfil.KeySector, &state.Facets.Sector)
	s.loadFacet(ctx, domfil.KeyLanguage, &state.Facets.Language)
	s.loadFacet(ctx, domfil.KeyGovernate, &state.Facets.Governate)
	s.loadFacet(ctx, domfil.KeyDistrict, &state.Facets.District)

	if raw, ok := s.getString(ctx, domfil.KeyRateRange); ok {
		var rr [2]float64
		if err := json.Unmarshal([]byte(raw), &rr); err == nil && rr[0] <= rr[1] {
			state.RateRange = rr
		}
	}
	if raw, ok := s.getString(ctx, domfil.KeyMinRating); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			state.MinRating = v
		}
	}
	if raw, ok := s.getString(ctx, domfil.KeySortBy); ok {
		if sb := domfil.SortBy(raw); sb.IsValid() {
			state.SortBy = sb
		}
	}
	return state
}

// SaveSearchTerm persists the free-text search term.
func (s *Store) SaveSearchTerm(ctx context.Context, term string) error {
	return s.set(ctx, domfil.KeySearchTerm, term)
}

// SaveFacet persists one facet field by name.
func (s *Store) SaveFacet(ctx context.Context, field, value string) error {
	key, ok := facetKeys[field]
	if !ok {
		return fmt.Errorf("field %q: %w", field, domain.ErrInvalidFilter)
	}
	return s.set(ctx, key, value)
}

// SaveRateRange persists the rate bounds as a JSON array.
func (s *Store) SaveRateRange(ctx context.Context, rr [2]float64) error {
	data, err := json.Marshal(rr)
	if err != nil {
		return fmt.Errorf("marshal rate range: %w", err)
	}
	return s.set(ctx, domfil.KeyRateRange, string(data))
}

// SaveMinRating persists the minimum rating as a stringified number.
func (s *Store) SaveMinRating(ctx context.Context, v float64) error {
	return s.set(ctx, domfil.KeyMinRating, strconv.FormatFloat(v, 'f', -1, 64))
}

// SaveSortBy persists the sort mode.
func (s *Store) SaveSortBy(ctx context.Context, sb domfil.SortBy) error {
	return s.set(ctx, domfil.KeySortBy, string(sb))
}

func (s *Store) loadFacet(ctx context.Context, key string, dst *string) {
	if v, ok := s.getString(ctx, key); ok && v != "" {
		*dst = v
	}
}

func (s *Store) getString(ctx context.Context, key string) (string, bool) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *Store) set(ctx context.Context, key, value string) error {
	if err := s.store.Set(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
