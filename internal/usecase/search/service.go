// Package search fetches tutors for the current filter state: it builds
// the query, debounces bursts of filter changes, discards stale
// responses, and keeps the latest sorted result set.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	"github.com/ImComy/Modaresy-sub002/internal/logger"
	"github.com/ImComy/Modaresy-sub002/internal/match"
	"github.com/ImComy/Modaresy-sub002/internal/metrics"
)

// DefaultDebounce is the quiet period after the last filter change
// before a fetch is dispatched.
const DefaultDebounce = 300 * time.Millisecond

const fetchTimeout = 30 * time.Second

// Service owns the fetch lifecycle. Filter changes call Schedule; only
// the last change in a debounce window reaches the API, and only the
// newest in-flight response is committed.
type Service struct {
	api      API
	state    FilterSource
	matcher  *match.Matcher
	logger   *zap.Logger
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	results    []domain.TutorRecord
	err        error
	inflight   int
	onResults  func()
}

// New creates a search service. debounce <= 0 falls back to
// DefaultDebounce.
func New(api API, state FilterSource, matcher *match.Matcher, logger *zap.Logger, debounce time.Duration) *Service {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:      api,
		state:    state,
		matcher:  matcher,
		logger:   logger,
		debounce: debounce,
	}
}

// OnResults registers a callback fired after every commit, successful
// or failed. Must be called before the first Schedule.
func (s *Service) OnResults(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResults = fn
}

// Schedule arms the debounce timer. Repeated calls within the quiet
// period collapse into a single fetch of the state current at firing
// time.
func (s *Service) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		if s.timer.Stop() {
			metrics.SearchDebounceCollapsedTotal.Inc()
		}
	}
	s.timer = time.AfterFunc(s.debounce, s.fetch)
}

// Refresh fetches immediately, bypassing the debounce window. It still
// participates in stale-response discard.
func (s *Service) Refresh() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fetch()
}

// Stop cancels any pending fetch. In-flight requests finish but their
// results are discarded.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

// Results returns a copy of the latest committed result set and the
// error from the latest fetch, if any.
func (s *Service) Results() ([]domain.TutorRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TutorRecord, len(s.results))
	copy(out, s.results)
	return out, s.err
}

// Loading reports whether a fetch is in flight or pending.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0 || s.timer != nil
}

func (s *Service) fetch() {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.timer = nil
	s.inflight++
	s.mu.Unlock()

	st := s.state.State()
	params := BuildQuery(st)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	ctx = logger.ContextWithLogger(ctx, s.logger)

	start := time.Now()
	resp, err := s.api.FilterTutors(ctx, params)
	metrics.SearchFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SearchFetchesTotal.WithLabelValues("error").Inc()
		s.logger.Warn("tutor fetch failed", zap.Error(err))
		s.commit(gen, nil, err)
		return
	}
	metrics.SearchFetchesTotal.WithLabelValues("success").Inc()

	records := mapTutors(resp.Tutors, s.logger)
	records = s.refine(st.SearchTerm, records)
	records = SortRecords(records, st.SortBy)

	s.commit(gen, records, nil)
}

// commit installs a fetch outcome unless a newer request has since been
// dispatched. A failed fetch clears the previous results rather than
// serving them against a state they no longer reflect.
func (s *Service) commit(gen uint64, records []domain.TutorRecord, err error) {
	s.mu.Lock()
	s.inflight--
	if gen != s.generation {
		s.mu.Unlock()
		metrics.SearchStaleDiscardsTotal.Inc()
		s.logger.Debug("stale search response discarded",
			zap.Uint64("generation", gen))
		return
	}
	s.results = records
	s.err = err
	fn := s.onResults
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// refine runs the local approximate pass over a fetched set, keeping
// server results that also match the search term against the tutor's
// name and subjects. An empty term keeps everything.
func (s *Service) refine(term string, records []domain.TutorRecord) []domain.TutorRecord {
	if strings.TrimSpace(term) == "" || len(records) == 0 {
		return records
	}

	entries := make([]match.Entry, len(records))
	byID := make(map[string]domain.TutorRecord, len(records))
	for i, r := range records {
		entries[i] = match.NewEntry(r.ID, searchableLabel(r))
		byID[r.ID] = r
	}

	matched := s.matcher.Match(term, "", entries)
	out := make([]domain.TutorRecord, 0, len(matched))
	for _, e := range matched {
		out = append(out, byID[e.Value])
	}
	return out
}

// searchableLabel joins the fields the free-text term is matched
// against: name, location, and taught subjects.
func searchableLabel(r domain.TutorRecord) string {
	parts := []string{r.Name, r.Governate, r.District}
	for _, sp := range r.Subjects {
		parts = append(parts, sp.Subject)
	}
	return strings.Join(parts, " ")
}
