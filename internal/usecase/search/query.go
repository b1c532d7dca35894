package search

import (
	"net/url"
	"strconv"
	"strings"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	"github.com/ImComy/Modaresy-sub002/internal/domain/taxonomy"
)

// BuildQuery maps the filter state to endpoint query parameters. Sentinel
// selections ("all", "none", empty) and default rate bounds are omitted,
// so an untouched state produces an unrestricted query.
func BuildQuery(st domfil.State) url.Values {
	params := url.Values{}

	setConcrete(params, "education_system", st.Facets.EducationSystem)
	setConcrete(params, "grade", st.Facets.Grade)
	setConcrete(params, "subject", st.Facets.Subject)
	setConcrete(params, "sector", st.Facets.Sector)
	setConcrete(params, "language", st.Facets.Language)
	setConcrete(params, "governate", st.Facets.Governate)
	setConcrete(params, "district", st.Facets.District)

	if st.MinRating > 0 {
		params.Set("min_rating", formatFloat(st.MinRating))
	}
	if st.RateRange[0] > domfil.DefaultRateMin {
		params.Set("min_price", formatFloat(st.RateRange[0]))
	}
	if st.RateRange[1] != domfil.DefaultRateMax && st.RateRange[1] > 0 {
		params.Set("max_price", formatFloat(st.RateRange[1]))
	}

	if q := strings.TrimSpace(st.SearchTerm); q != "" {
		params.Set("q", q)
	}

	return params
}

func setConcrete(params url.Values, name, value string) {
	if value == "" || value == taxonomy.All || value == taxonomy.None {
		return
	}
	params.Set(name, value)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
