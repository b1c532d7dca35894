package filters

// SortBy selects the result ordering.
type SortBy string

const (
	// SortRatingDesc orders by best subject rating, highest first.
	SortRatingDesc SortBy = "ratingDesc"
	// SortRateAsc orders by cheapest subject price, lowest first.
	SortRateAsc SortBy = "rateAsc"
	// SortRateDesc orders by cheapest subject price, highest first.
	SortRateDesc SortBy = "rateDesc"
	// SortNameAsc orders by display name A-Z.
	SortNameAsc SortBy = "nameAsc"
	// SortNameDesc orders by display name Z-A.
	SortNameDesc SortBy = "nameDesc"
)

// IsValid reports whether s is a known sort mode.
func (s SortBy) IsValid() bool {
	switch s {
	case SortRatingDesc, SortRateAsc, SortRateDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}
