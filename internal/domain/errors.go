package domain

import "errors"

var (
	// ErrTaxonomyUnavailable signals that the education taxonomy could not be loaded.
	ErrTaxonomyUnavailable = errors.New("taxonomy unavailable")
	// ErrSearchFailed signals a failed tutor search fetch.
	ErrSearchFailed = errors.New("tutor search failed")
	// ErrInvalidFilter signals an unknown filter field or sort mode.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrStoreUnavailable signals that the durable filter store is unreachable.
	ErrStoreUnavailable = errors.New("filter store unavailable")
)
