package modaresy

import (
	searchuc "github.com/ImComy/Modaresy-sub002/internal/usecase/search"
)

// SearchService surfaces the latest fetched result set. Results update
// asynchronously after filter changes; OnResults signals each update.
type SearchService struct {
	svc *searchuc.Service
}

// Results returns the latest committed result set, sorted per the
// current sort mode, and the error from the latest fetch if it failed.
func (s *SearchService) Results() ([]Tutor, error) {
	records, err := s.svc.Results()
	return fromTutors(records), err
}

// Refresh fetches immediately with the current filter state, bypassing
// the debounce window.
func (s *SearchService) Refresh() {
	s.svc.Refresh()
}

// Loading reports whether a fetch is pending or in flight.
func (s *SearchService) Loading() bool {
	return s.svc.Loading()
}

// OnResults registers a callback fired after every fetch commits,
// successful or failed. Register before the first filter change.
func (s *SearchService) OnResults(fn func()) {
	s.svc.OnResults(fn)
}
