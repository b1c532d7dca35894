// Package taxonomy owns the session cache of the education taxonomy.
// The cache is an explicit field of the repository object, constructed
// once and injected where needed; there is no package-level state.
package taxonomy

import (
	"context"
	"sync"

	"go.uber.org/zap"

	domtax "github.com/ImComy/Modaresy-sub002/internal/domain/taxonomy"
	"github.com/ImComy/Modaresy-sub002/internal/metrics"
)

// source is the consumer interface for taxonomy loading (ISP).
type source interface {
	FetchTaxonomy(ctx context.Context) (*domtax.Tree, error)
}

// Repo loads and caches the taxonomy tree.
type Repo struct {
	src    source
	logger *zap.Logger

	mu     sync.RWMutex
	cached *domtax.Tree
}

// New creates a taxonomy repository.
func New(src source, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{src: src, logger: logger}
}

// Load returns the taxonomy tree, fetching it on first use. force
// bypasses the cache. On failure the empty tree is returned together
// with the error, so facet derivation keeps working with every option
// list empty.
func (r *Repo) Load(ctx context.Context, force bool) (*domtax.Tree, error) {
	if !force {
		r.mu.RLock()
		cached := r.cached
		r.mu.RUnlock()
		if cached != nil {
			metrics.TaxonomyLoadsTotal.WithLabelValues("cached").Inc()
			return cached, nil
		}
	}

	tree, err := r.src.FetchTaxonomy(ctx)
	if err != nil {
		metrics.TaxonomyLoadsTotal.WithLabelValues("error").Inc()
		r.logger.Warn("taxonomy load failed", zap.Error(err))
		return domtax.Empty(), err
	}

	r.mu.Lock()
	r.cached = tree
	r.mu.Unlock()

	metrics.TaxonomyLoadsTotal.WithLabelValues("fetched").Inc()
	r.logger.Debug("taxonomy loaded", zap.Int("systems", len(tree.Systems)))
	return tree, nil
}

// Cached returns the cached tree without fetching, or the empty tree.
func (r *Repo) Cached() *domtax.Tree {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cached == nil {
		return domtax.Empty()
	}
	return r.cached
}
