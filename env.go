package modaresy

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ImComy/Modaresy-sub002/internal/config"
	"github.com/ImComy/Modaresy-sub002/internal/logger"
)

// NewFromEnv builds a Client from the YAML config file for the current
// ENV (local, dev, prod), looked up under ./config/. Options given here
// override the file.
func NewFromEnv(opts ...Option) (*Client, error) {
	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("modaresy: load config: %w", err)
	}

	log, err := logger.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("modaresy: build logger: %w", err)
	}

	base := []Option{
		WithBaseURL(cfg.API.BaseURL),
		WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.API.TimeoutSec) * time.Second}),
		WithDebounce(time.Duration(cfg.Search.DebounceMs) * time.Millisecond),
		WithFuzzyMaxDistanceRatio(cfg.Search.FuzzyMaxDistanceRate),
		WithFallbackLanguages(cfg.Search.FallbackLanguages),
		WithLogger(log),
	}
	switch cfg.Storage.Driver {
	case "redis":
		base = append(base, WithRedis(cfg.Storage.Addrs[0], cfg.Storage.Password))
	case "valkey":
		base = append(base, WithValkey(cfg.Storage.Addrs[0], cfg.Storage.Password))
	}
	if cfg.Storage.Driver != "memory" {
		base = append(base, WithKeyPrefix(cfg.Storage.KeyPrefix))
	}

	return New(append(base, opts...)...)
}
