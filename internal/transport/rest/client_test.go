package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
)

func newFakeAPI(t *testing.T, mount func(r chi.Router)) *Client {
	t.Helper()
	r := chi.NewRouter()
	mount(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL})
}

func TestFilterTutors(t *testing.T) {
	var gotQuery url.Values
	c := newFakeAPI(t, func(r chi.Router) {
		r.Get("/tutors/filter", func(w http.ResponseWriter, req *http.Request) {
			gotQuery = req.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"tutors": [
				{"_id": "t1", "name": "Ahmed Hassan", "governate": "Cairo",
				 "subject_profiles": [
					{"subject": "Math", "grade": "G9", "language": "Arabic",
					 "education_system": "National", "sector": "Science",
					 "private_price": 250, "rating": 4.5}
				]}
			]}`))
		})
	})

	params := url.Values{}
	params.Set("grade", "G9")
	params.Set("subject", "Math")

	resp, err := c.FilterTutors(context.Background(), params)
	if err != nil {
		t.Fatalf("FilterTutors: %v", err)
	}
	if gotQuery.Get("grade") != "G9" || gotQuery.Get("subject") != "Math" {
		t.Errorf("query = %v", gotQuery)
	}
	if len(resp.Tutors) != 1 {
		t.Fatalf("got %d tutors", len(resp.Tutors))
	}
	doc := resp.Tutors[0]
	if doc.ID != "t1" || doc.Name != "Ahmed Hassan" {
		t.Errorf("doc = %+v", doc)
	}
	sp := doc.SubjectProfiles[0]
	if sp.PrivatePrice == nil || *sp.PrivatePrice != 250 {
		t.Errorf("private_price = %v", sp.PrivatePrice)
	}
	if sp.Rating == nil || *sp.Rating != 4.5 {
		t.Errorf("rating = %v", sp.Rating)
	}
}

func TestFilterTutors_ServerError(t *testing.T) {
	c := newFakeAPI(t, func(r chi.Router) {
		r.Get("/tutors/filter", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
	})

	_, err := c.FilterTutors(context.Background(), url.Values{})
	if !errors.Is(err, domain.ErrSearchFailed) {
		t.Fatalf("err = %v, want ErrSearchFailed", err)
	}
}

func TestFetchTaxonomy(t *testing.T) {
	c := newFakeAPI(t, func(r chi.Router) {
		r.Get("/education-structure", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"National": {"grades": ["G9"], "languages": ["Arabic"]}}`))
		})
	})

	tree, err := c.FetchTaxonomy(context.Background())
	if err != nil {
		t.Fatalf("FetchTaxonomy: %v", err)
	}
	sys, ok := tree.System("National")
	if !ok || len(sys.Grades) != 1 {
		t.Errorf("tree = %+v", tree)
	}
}

func TestFetchTaxonomy_Unavailable(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:0"})
	_, err := c.FetchTaxonomy(context.Background())
	if !errors.Is(err, domain.ErrTaxonomyUnavailable) {
		t.Fatalf("err = %v, want ErrTaxonomyUnavailable", err)
	}
}
