package modaresy

import (
	"github.com/ImComy/Modaresy-sub002/internal/domain"
	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	"github.com/ImComy/Modaresy-sub002/internal/facet"
)

func fromState(st domfil.State) FilterState {
	return FilterState{
		SearchTerm: st.SearchTerm,
		Facets: Facets{
			Subject:         st.Facets.Subject,
			Grade:           st.Facets.Grade,
			EducationSystem: st.Facets.EducationSystem,
			Sector:          st.Facets.Sector,
			Language:        st.Facets.Language,
			Governate:       st.Facets.Governate,
			District:        st.Facets.District,
		},
		RateRange: st.RateRange,
		MinRating: st.MinRating,
		SortBy:    SortBy(st.SortBy),
	}
}

func toFacets(f Facets) domfil.Facets {
	return domfil.Facets{
		Subject:         f.Subject,
		Grade:           f.Grade,
		EducationSystem: f.EducationSystem,
		Sector:          f.Sector,
		Language:        f.Language,
		Governate:       f.Governate,
		District:        f.District,
	}
}

func fromOptions(opts []facet.Option) []FacetOption {
	out := make([]FacetOption, len(opts))
	for i, o := range opts {
		out[i] = FacetOption{Value: o.Value, Label: o.Label}
	}
	return out
}

func fromTutors(records []domain.TutorRecord) []Tutor {
	out := make([]Tutor, len(records))
	for i := range records {
		out[i] = fromTutor(&records[i])
	}
	return out
}

func fromTutor(r *domain.TutorRecord) Tutor {
	t := Tutor{
		ID:        r.ID,
		Name:      r.Name,
		Governate: r.Governate,
		District:  r.District,
		Rating:    r.Rating,
		HasRating: r.HasRating,
		Subjects:  make([]SubjectProfile, len(r.Subjects)),
	}
	for i, sp := range r.Subjects {
		t.Subjects[i] = SubjectProfile(sp)
	}
	return t
}
