package search

import (
	"math"
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
)

// SortRecords returns the records ordered by the given mode, leaving
// the input untouched. Ordering is stable, so fetch order breaks ties.
// Tutors without a rating sort last under ratingDesc; tutors without a
// price sort last under both price orders. Name ordering is
// collation-aware so Arabic and Latin names interleave correctly.
func SortRecords(records []domain.TutorRecord, sb domfil.SortBy) []domain.TutorRecord {
	records = slices.Clone(records)
	switch sb {
	case domfil.SortRatingDesc:
		sortByKey(records, func(t *domain.TutorRecord) float64 {
			return -t.MaxSubjectRating()
		})
	case domfil.SortRateAsc:
		sortByKey(records, func(t *domain.TutorRecord) float64 {
			return t.MinSubjectPrice()
		})
	case domfil.SortRateDesc:
		sortByKey(records, func(t *domain.TutorRecord) float64 {
			p := t.MinSubjectPrice()
			if math.IsInf(p, 1) {
				return p
			}
			return -p
		})
	case domfil.SortNameAsc:
		sortByName(records, false)
	case domfil.SortNameDesc:
		sortByName(records, true)
	}
	return records
}

func sortByKey(records []domain.TutorRecord, key func(*domain.TutorRecord) float64) {
	sort.SliceStable(records, func(i, j int) bool {
		return key(&records[i]) < key(&records[j])
	})
}

func sortByName(records []domain.TutorRecord, desc bool) {
	c := collate.New(language.Arabic, collate.IgnoreCase)
	sort.SliceStable(records, func(i, j int) bool {
		cmp := c.CompareString(records[i].Name, records[j].Name)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
