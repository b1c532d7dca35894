package filters

import "testing"

func TestDefault(t *testing.T) {
	s := Default()
	if s.SearchTerm != "" {
		t.Errorf("SearchTerm = %q", s.SearchTerm)
	}
	if s.Facets.Subject != "none" || s.Facets.Grade != "none" {
		t.Errorf("subject/grade defaults = %q/%q, want none/none", s.Facets.Subject, s.Facets.Grade)
	}
	if s.Facets.EducationSystem != "all" || s.Facets.Language != "all" {
		t.Errorf("system/language defaults = %q/%q, want all/all", s.Facets.EducationSystem, s.Facets.Language)
	}
	if s.SortBy != SortRatingDesc {
		t.Errorf("SortBy = %q, want %q", s.SortBy, SortRatingDesc)
	}
	if s.RateRange != [2]float64{DefaultRateMin, DefaultRateMax} {
		t.Errorf("RateRange = %v", s.RateRange)
	}
}

func TestReady(t *testing.T) {
	s := Default()
	if s.Ready() {
		t.Error("default state must not be ready")
	}
	s.Facets.Subject = "Math"
	if s.Ready() {
		t.Error("subject alone must not be ready")
	}
	s.Facets.Grade = "G9"
	if !s.Ready() {
		t.Error("subject+grade must be ready")
	}
}

func TestSortBy_IsValid(t *testing.T) {
	for _, v := range []SortBy{SortRatingDesc, SortRateAsc, SortRateDesc, SortNameAsc, SortNameDesc} {
		if !v.IsValid() {
			t.Errorf("%q should be valid", v)
		}
	}
	if SortBy("priceAsc").IsValid() {
		t.Error("unknown mode reported valid")
	}
}
