package filters

import (
	"context"
	"testing"

	domfil "github.com/ImComy/Modaresy-sub002/internal/domain/filters"
)

// mockRepo implements Repository for tests, recording every write.
type mockRepo struct {
	initial domfil.State
	writes  []string
	saveErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{initial: domfil.Default()}
}

func (m *mockRepo) Load(context.Context) domfil.State { return m.initial }

func (m *mockRepo) record(key string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.writes = append(m.writes, key)
	return nil
}

func (m *mockRepo) SaveSearchTerm(_ context.Context, _ string) error { return m.record("searchTerm") }
func (m *mockRepo) SaveFacet(_ context.Context, field, _ string) error {
	return m.record("facet:" + field)
}
func (m *mockRepo) SaveRateRange(_ context.Context, _ [2]float64) error { return m.record("rateRange") }
func (m *mockRepo) SaveMinRating(_ context.Context, _ float64) error    { return m.record("minRating") }
func (m *mockRepo) SaveSortBy(_ context.Context, _ domfil.SortBy) error { return m.record("sortBy") }

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	return New(context.Background(), repo, nil), repo
}
