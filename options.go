package modaresy

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver    string // "memory", "redis" or "valkey"
	addrs     []string
	password  string
	keyPrefix string

	baseURL    string
	httpClient *http.Client

	debounce          time.Duration
	fuzzyRatio        float64
	fallbackLanguages []string

	logger  *zap.Logger
	metrics bool
}

// WithBaseURL sets the marketplace API base URL. Required.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithMemoryStore keeps filter state in process. This is the default;
// state lives as long as the Client.
func WithMemoryStore() Option {
	return func(c *clientConfig) {
		c.driver = "memory"
	}
}

// WithRedis persists filter state to a Redis instance, so selections
// survive restarts.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithValkey persists filter state to a Valkey instance.
func WithValkey(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithKeyPrefix namespaces every storage key, so several applications
// can share one Redis/Valkey instance. No effect on the memory store.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithDebounce sets the quiet period between the last filter change and
// the fetch it triggers. Defaults to 300ms.
func WithDebounce(d time.Duration) Option {
	return func(c *clientConfig) {
		c.debounce = d
	}
}

// WithFuzzyMaxDistanceRatio sets the edit-distance budget of the
// approximate matcher, relative to token length. Defaults to 0.4;
// lower is stricter.
func WithFuzzyMaxDistanceRatio(r float64) Option {
	return func(c *clientConfig) {
		c.fuzzyRatio = r
	}
}

// WithFallbackLanguages sets the languages offered for education
// systems whose taxonomy entry lists none. Defaults to Arabic and
// English.
func WithFallbackLanguages(langs []string) Option {
	return func(c *clientConfig) {
		c.fallbackLanguages = langs
	}
}

// WithLogger enables structured logging for engine operations.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithMetrics registers Prometheus metrics (fetch counts, durations,
// debounce and staleness counters) on the default registry.
func WithMetrics() Option {
	return func(c *clientConfig) {
		c.metrics = true
	}
}
