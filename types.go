package modaresy

// Facet sentinels. All means unrestricted; None means no concrete
// choice has been made yet.
const (
	All  = "all"
	None = "none"
)

// Facet field names accepted by FilterService.Set.
const (
	FieldSubject         = "subject"
	FieldGrade           = "grade"
	FieldEducationSystem = "educationSystem"
	FieldSector          = "sector"
	FieldLanguage        = "language"
	FieldGovernate       = "governate"
	FieldDistrict        = "district"
)

// SortBy selects the result ordering.
type SortBy string

const (
	SortRatingDesc SortBy = "ratingDesc"
	SortRateAsc    SortBy = "rateAsc"
	SortRateDesc   SortBy = "rateDesc"
	SortNameAsc    SortBy = "nameAsc"
	SortNameDesc   SortBy = "nameDesc"
)

// FacetOption is one selectable value with its display label.
type FacetOption struct {
	Value string
	Label string
}

// Facets are the selectable filter dimensions.
type Facets struct {
	Subject         string
	Grade           string
	EducationSystem string
	Sector          string
	Language        string
	Governate       string
	District        string
}

// FilterState is a snapshot of the whole filter selection.
type FilterState struct {
	SearchTerm string
	Facets     Facets
	RateRange  [2]float64
	MinRating  float64
	SortBy     SortBy
}

// SubjectProfile is one subject a tutor teaches.
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

// Tutor is one search result.
type Tutor struct {
	ID        string
	Name      string
	Governate string
	District  string
	Rating    float64
	HasRating bool
	Subjects  []SubjectProfile
}
