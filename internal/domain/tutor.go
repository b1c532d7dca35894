package domain

import (
	"math"
	"strings"
)

// SectorGeneral is the sector synthesized for education systems and
// legacy records that declare none.
const SectorGeneral = "General"

// SubjectProfile is one subject a tutor teaches, with its education
// placement and pricing.
type SubjectProfile struct {
	Subject         string
	Grade           string
	Language        string
	EducationSystem string
	Sector          string
	Price           float64
	HasPrice        bool
	Rating          float64
	HasRating       bool
}

// TutorRecord is the internal shape of one fetched tutor. Records are
// only constructed by the search response mapper and are replaced
// wholesale on every successful fetch.
type TutorRecord struct {
	ID        string
	Name      string
	Governate string
	District  string
	Rating    float64
	HasRating bool
	Subjects  []SubjectProfile
}

// MaxSubjectRating returns the highest subject rating, or -Inf when no
// subject carries one, so unrated tutors sort last under rating-descending.
func (t *TutorRecord) MaxSubjectRating() float64 {
	best := math.Inf(-1)
	for _, s := range t.Subjects {
		if s.HasRating && s.Rating > best {
			best = s.Rating
		}
	}
	return best
}

// MinSubjectPrice returns the lowest subject price, or +Inf when no
// subject carries one, so unpriced tutors sort last in either price order.
func (t *TutorRecord) MinSubjectPrice() float64 {
	best := math.Inf(1)
	for _, s := range t.Subjects {
		if s.HasPrice && s.Price < best {
			best = s.Price
		}
	}
	return best
}

// ParseLegacyType splits a combined sector/system label from older
// records into its two fields. A single token is an education system
// with the sector defaulted to General; multiple hyphen-separated
// tokens split as "sector - system", with everything after the first
// token re-joined as the system. ok is false when either side comes
// out empty, so callers flag the record instead of mis-assigning it.
func ParseLegacyType(raw string) (system, sector string, ok bool) {
	before, after, found := strings.Cut(raw, "-")
	before = strings.TrimSpace(before)

	if !found {
		if before == "" {
			return "", "", false
		}
		return before, SectorGeneral, true
	}

	sector = before
	system = strings.TrimSpace(after)
	if sector == "" || system == "" {
		return "", "", false
	}
	return system, sector, true
}
