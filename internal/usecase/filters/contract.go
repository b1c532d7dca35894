package filters

import (
	"context"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
)

// Repository persists filter state field by field.
type Repository interface {
	Load(ctx context.Context) domfil.State
	SaveSearchTerm(ctx context.Context, term string) error
	SaveFacet(ctx context.Context, field, value string) error
	SaveRateRange(ctx context.Context, rr [2]float64) error
	SaveMinRating(ctx context.Context, v float64) error
	SaveSortBy(ctx context.Context, sb domfil.SortBy) error
}
