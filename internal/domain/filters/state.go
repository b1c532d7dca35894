// Package filters holds the durable tutor-discovery filter state and
// its defaults, sentinels and storage keys.
package filters

import "github.com/ImComy/Modaresy-sub002/internal/domain/taxonomy"

// Field names acceptable to single-field changes.
const (
	FieldSubject         = "subject"
	FieldGrade           = "grade"
	FieldEducationSystem = "educationSystem"
	FieldSector          = "sector"
	FieldLanguage        = "language"
	FieldGovernate       = "governate"
	FieldDistrict        = "district"
)

// Storage keys, one per field. These are stable: persisted state from
// older sessions must keep resolving.
const (
	KeySearchTerm      = "filters:searchTerm"
	KeySubject         = "filters:subject"
	KeyGrade           = "filters:grade"
	KeyEducationSystem = "filters:educationSystem"
	KeySector          = "filters:sector"
	KeyLanguage        = "filters:language"
	KeyGovernate       = "filters:governate"
	KeyDistrict        = "filters:district"
	KeyRateRange       = "filters:rateRange"
	KeyMinRating       = "filters:minRating"
	KeySortBy          = "filters:sortBy"
)

// Default rate bounds in EGP per session.
const (
	DefaultRateMin = 0
	DefaultRateMax = 1000
)

// Facets are the selectable filter dimensions. Subject and grade use
// the "none" sentinel (a concrete choice is required before results
// count as final); the rest default to "all" (unrestricted).
type Facets struct {
	Subject         string
	Grade           string
	EducationSystem string
	Sector          string
	Language        string
	Governate       string
	District        string
}

// State is the whole filter state. It is only reset to defaults, never
// deleted; every field change is persisted independently.
type State struct {
	SearchTerm string
	Facets     Facets
	RateRange  [2]float64
	MinRating  float64
	SortBy     SortBy
}

// DefaultFacets returns the unset facet selection.
func DefaultFacets() Facets {
	return Facets{
		Subject:         taxonomy.None,
		Grade:           taxonomy.None,
		EducationSystem: taxonomy.All,
		Sector:          taxonomy.All,
		Language:        taxonomy.All,
		Governate:       taxonomy.All,
		District:        taxonomy.All,
	}
}

// Default returns the documented startup state.
func Default() State {
	return State{
		SearchTerm: "",
		Facets:     DefaultFacets(),
		RateRange:  [2]float64{DefaultRateMin, DefaultRateMax},
		MinRating:  0,
		SortBy:     SortRatingDesc,
	}
}

// Ready reports whether the selection is concrete enough for results
// to be treated as final: both subject and grade must be chosen.
func (s *State) Ready() bool {
	return s.Facets.Subject != taxonomy.None && s.Facets.Subject != "" &&
		s.Facets.Grade != taxonomy.None && s.Facets.Grade != ""
}
