package search

import (
	"context"
	"net/url"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	"github.com/ImComy/Modaresy-sub002/internal/transport/rest"
)

// API defines the marketplace endpoint contract for tutor queries.
type API interface {
	FilterTutors(ctx context.Context, params url.Values) (*rest.FilterResponse, error)
}

// FilterSource reads the current filter state snapshot.
type FilterSource interface {
	State() domfil.State
}
