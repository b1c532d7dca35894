package search

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	"github.com/ImComy/Modaresy-sub002/internal/match"
	"github.com/ImComy/Modaresy-sub002/internal/transport/rest"
)

var errAPIDown = errors.New("api down")

// mockAPI records every call and serves a canned response, or fails
// when failing is set.
type mockAPI struct {
	mu      sync.Mutex
	calls   []url.Values
	resp    *rest.FilterResponse
	failing bool
	// gate, when non-nil, blocks each call until it receives.
	gate chan struct{}
}

func (m *mockAPI) FilterTutors(_ context.Context, params url.Values) (*rest.FilterResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, params)
	gate := m.gate
	failing := m.failing
	resp := m.resp
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if failing {
		return nil, errAPIDown
	}
	if resp == nil {
		return &rest.FilterResponse{}, nil
	}
	return resp, nil
}

func (m *mockAPI) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockAPI) lastCall() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}

// mockFilters serves a swappable state snapshot.
type mockFilters struct {
	mu sync.Mutex
	st domfil.State
}

func (m *mockFilters) State() domfil.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st
}

func (m *mockFilters) set(st domfil.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = st
}

func newTestService(api *mockAPI, debounce time.Duration) (*Service, *mockFilters, chan struct{}) {
	filters := &mockFilters{st: domfil.Default()}
	svc := New(api, filters, match.New(0), nil, debounce)
	committed := make(chan struct{}, 16)
	svc.OnResults(func() { committed <- struct{}{} })
	return svc, filters, committed
}

func waitCommit(ch chan struct{}, timeout time.Duration) bool {
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (m *mockAPI) setResp(resp *rest.FilterResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resp = resp
}

func (m *mockAPI) setFailing(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = v
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func ptr(f float64) *float64 { return &f }
