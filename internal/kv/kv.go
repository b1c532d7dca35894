// Package kv defines the narrow key/value facade backing durable
// filter-state persistence. Values are raw strings, stringified
// numbers or JSON-encoded arrays, one key per filter field.
package kv

import (
	"context"
	"time"
)

// Store is the durable client storage facade.
type Store interface {
	Pinger
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks storage connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
