package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	SearchFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modaresy",
			Name:      "search_fetches_total",
			Help:      "Total number of tutor search fetches",
		},
		[]string{"status"}, // "success" / "error"
	)

	SearchFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "modaresy",
			Name:      "search_fetch_duration_seconds",
			Help:      "Tutor search fetch duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	SearchStaleDiscardsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "modaresy",
			Name:      "search_stale_discards_total",
			Help:      "Responses discarded because a newer request was issued",
		},
	)

	SearchDebounceCollapsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "modaresy",
			Name:      "search_debounce_collapsed_total",
			Help:      "Filter changes absorbed by the debounce window without a fetch",
		},
	)

	TaxonomyLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modaresy",
			Name:      "taxonomy_loads_total",
			Help:      "Taxonomy loads by outcome",
		},
		[]string{"result"}, // "cached" / "fetched" / "error"
	)
)

var registerOnce sync.Once

// RegisterSearchMetrics registers Prometheus search metrics. Safe to
// call from concurrent client constructors; only the first call
// registers.
func RegisterSearchMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SearchFetchesTotal)
		prometheus.MustRegister(SearchFetchDuration)
		prometheus.MustRegister(SearchStaleDiscardsTotal)
		prometheus.MustRegister(SearchDebounceCollapsedTotal)
		prometheus.MustRegister(TaxonomyLoadsTotal)
	})
}
