package search

import (
	"errors"
	"testing"
	"time"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
	"github.com/ImComy/Modaresy-sub002/internal/transport/rest"
)

func TestScheduleCollapsesBursts(t *testing.T) {
	api := &mockAPI{}
	svc, filters, committed := newTestService(api, 40*time.Millisecond)

	st := domfil.Default()
	for _, subject := range []string{"Math", "Physics", "Chemistry", "Biology"} {
		st.Facets.Subject = subject
		st.Facets.Grade = "Secondary 3"
		filters.set(st)
		svc.Schedule()
		time.Sleep(2 * time.Millisecond)
	}

	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("no commit after debounce window")
	}
	if got := api.callCount(); got != 1 {
		t.Fatalf("burst produced %d fetches, want 1", got)
	}
	if got := api.lastCall().Get("subject"); got != "Biology" {
		t.Fatalf("fetched subject %q, want the last change", got)
	}
}

func TestRefreshBypassesDebounce(t *testing.T) {
	api := &mockAPI{resp: &rest.FilterResponse{Tutors: []rest.TutorDoc{{ID: "t1", Name: "Ahmed"}}}}
	svc, _, committed := newTestService(api, time.Hour)

	svc.Refresh()
	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("refresh did not commit")
	}
	records, err := svc.Results()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "t1" {
		t.Fatalf("results = %v", records)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	api := &mockAPI{
		resp: &rest.FilterResponse{Tutors: []rest.TutorDoc{{ID: "old"}}},
		gate: make(chan struct{}),
	}
	svc, _, committed := newTestService(api, 10*time.Millisecond)

	go svc.Refresh()
	waitFor(t, func() bool { return api.callCount() == 1 })

	api.setResp(&rest.FilterResponse{Tutors: []rest.TutorDoc{{ID: "new"}}})
	go svc.Refresh()
	waitFor(t, func() bool { return api.callCount() == 2 })

	close(api.gate)

	// Only the newest request commits, whichever response lands first.
	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("no commit")
	}
	waitFor(t, func() bool {
		records, _ := svc.Results()
		return len(records) == 1
	})
	records, _ := svc.Results()
	if records[0].ID != "new" {
		t.Fatalf("committed %q, want the newest response", records[0].ID)
	}
	if waitCommit(committed, 100*time.Millisecond) {
		t.Fatal("stale response committed")
	}
}

func TestFailedFetchClearsResults(t *testing.T) {
	api := &mockAPI{resp: &rest.FilterResponse{Tutors: []rest.TutorDoc{{ID: "t1"}}}}
	svc, _, committed := newTestService(api, 10*time.Millisecond)

	svc.Refresh()
	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("first fetch did not commit")
	}

	api.setFailing(true)
	svc.Refresh()
	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("failed fetch did not commit")
	}

	records, err := svc.Results()
	if !errors.Is(err, errAPIDown) {
		t.Fatalf("err = %v, want wrapped api error", err)
	}
	if len(records) != 0 {
		t.Fatalf("failed fetch kept %d stale results", len(records))
	}
}

func TestSearchTermRefinesFetchedSet(t *testing.T) {
	api := &mockAPI{resp: &rest.FilterResponse{Tutors: []rest.TutorDoc{
		{ID: "t1", Name: "Ahmed Hassan", SubjectProfiles: []rest.SubjectProfileDoc{{Subject: "Math"}}},
		{ID: "t2", Name: "Mona Samir", SubjectProfiles: []rest.SubjectProfileDoc{{Subject: "Math"}}},
	}}}
	svc, filters, committed := newTestService(api, 10*time.Millisecond)

	st := domfil.Default()
	st.SearchTerm = "ahmad"
	filters.set(st)

	svc.Refresh()
	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("fetch did not commit")
	}

	records, err := svc.Results()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "t1" {
		t.Fatalf("refined set = %v, want only the approximate name match", ids(records))
	}
}

func TestResultsSortedBySelectedOrder(t *testing.T) {
	api := &mockAPI{resp: &rest.FilterResponse{Tutors: []rest.TutorDoc{
		{ID: "cheap", Name: "A", SubjectProfiles: []rest.SubjectProfileDoc{{Subject: "Math", PrivatePrice: ptr(50)}}},
		{ID: "unpriced", Name: "B", SubjectProfiles: []rest.SubjectProfileDoc{{Subject: "Math"}}},
		{ID: "mid", Name: "C", SubjectProfiles: []rest.SubjectProfileDoc{{Subject: "Math", PrivatePrice: ptr(120)}}},
	}}}
	svc, filters, committed := newTestService(api, 10*time.Millisecond)

	st := domfil.Default()
	st.SortBy = domfil.SortRateAsc
	filters.set(st)

	svc.Refresh()
	if !waitCommit(committed, 2*time.Second) {
		t.Fatal("fetch did not commit")
	}

	records, _ := svc.Results()
	assertOrder(t, records, "cheap", "mid", "unpriced")
}

func TestStopCancelsPendingFetch(t *testing.T) {
	api := &mockAPI{}
	svc, _, committed := newTestService(api, 20*time.Millisecond)

	svc.Schedule()
	svc.Stop()

	if waitCommit(committed, 150*time.Millisecond) {
		t.Fatal("stopped service still fetched")
	}
	if got := api.callCount(); got != 0 {
		t.Fatalf("stopped service issued %d fetches", got)
	}
}

func TestLoadingClearsAfterDiscardedFetch(t *testing.T) {
	api := &mockAPI{gate: make(chan struct{})}
	svc, _, committed := newTestService(api, 10*time.Millisecond)

	go svc.Refresh()
	waitFor(t, func() bool { return api.callCount() == 1 })
	if !svc.Loading() {
		t.Fatal("in-flight fetch not reported as loading")
	}

	svc.Stop()
	close(api.gate)

	if waitCommit(committed, 150*time.Millisecond) {
		t.Fatal("discarded fetch committed")
	}
	waitFor(t, func() bool { return !svc.Loading() })
}
