// Package modaresy is the tutor discovery engine SDK: durable filter
// state, taxonomy-derived facet options, approximate text matching,
// and debounced tutor fetching against the marketplace API.
package modaresy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ImComy/Modaresy-sub002/internal/kv"
	kvmemory "github.com/ImComy/Modaresy-sub002/internal/kv/memory"
	kvredis "github.com/ImComy/Modaresy-sub002/internal/kv/redis"
	"github.com/ImComy/Modaresy-sub002/internal/match"
	"github.com/ImComy/Modaresy-sub002/internal/metrics"
	filtersrepo "github.com/ImComy/Modaresy-sub002/internal/repository/filters"
	taxorepo "github.com/ImComy/Modaresy-sub002/internal/repository/taxonomy"
	"github.com/ImComy/Modaresy-sub002/internal/transport/rest"
	filtersuc "github.com/ImComy/Modaresy-sub002/internal/usecase/filters"
	searchuc "github.com/ImComy/Modaresy-sub002/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the engine entry point. Filter changes made through
// Filters() are persisted, trigger a debounced fetch, and surface
// through Search().
type Client struct {
	store     kv.Store
	logger    *zap.Logger
	matcher   *match.Matcher
	taxoRepo  *taxorepo.Repo
	filterSvc *filtersuc.Service
	searchSvc *searchuc.Service

	fallbackLanguages []string
}

// New creates a Client, restores persisted filter state, and wires
// filter changes to the fetch pipeline.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:            "memory",
		debounce:          searchuc.DefaultDebounce,
		fuzzyRatio:        match.DefaultMaxDistanceRatio,
		fallbackLanguages: []string{"Arabic", "English"},
	}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.baseURL == "" {
		return nil, errors.New("modaresy: api base URL required (use WithBaseURL)")
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.metrics {
		metrics.RegisterSearchMetrics()
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("modaresy: storage not ready: %w", err)
	}

	return wireClient(store, cfg, logger), nil
}

func createStore(cfg *clientConfig) (kv.Store, error) {
	switch cfg.driver {
	case "memory":
		return kvmemory.NewStore(), nil
	case "redis", "valkey":
		s, err := kvredis.NewStore(kvredis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
			Prefix:   cfg.keyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("modaresy: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("modaresy: unknown driver %q", cfg.driver)
	}
}

func wireClient(store kv.Store, cfg *clientConfig, logger *zap.Logger) *Client {
	api := rest.NewClient(rest.Config{
		BaseURL:    cfg.baseURL,
		HTTPClient: cfg.httpClient,
		Logger:     logger,
	})

	matcher := match.New(cfg.fuzzyRatio)
	filterSvc := filtersuc.New(context.Background(), filtersrepo.New(store), logger)
	searchSvc := searchuc.New(api, filterSvc, matcher, logger, cfg.debounce)
	filterSvc.OnChange(searchSvc.Schedule)

	return &Client{
		store:             store,
		logger:            logger,
		matcher:           matcher,
		taxoRepo:          taxorepo.New(api, logger),
		filterSvc:         filterSvc,
		searchSvc:         searchSvc,
		fallbackLanguages: cfg.fallbackLanguages,
	}
}

// Close cancels pending fetches and releases storage resources.
func (c *Client) Close() {
	c.searchSvc.Stop()
	c.store.Close()
}

// Ping checks storage connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Filters returns the filter state service.
func (c *Client) Filters() *FilterService {
	return &FilterService{svc: c.filterSvc}
}

// Search returns the result service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc}
}

// Facets returns the facet derivation service.
func (c *Client) Facets() *FacetService {
	return &FacetService{client: c}
}

// Match ranks candidate labels against a free-text query, best first.
// selected (may be empty) is pinned to the front even when it does not
// match. Meant for option dropdowns: Arabic labels match with or
// without diacritics, conjunction prefixes, and taa-marbuta endings.
func (c *Client) Match(query, selected string, labels []string) []string {
	entries := c.matcher.Match(query, selected, match.NewIndex(labels))
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}
