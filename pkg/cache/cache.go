package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a context-aware key/value cache with per-entry TTL.
type Cache interface {
	// Set stores value under key. A zero ttl uses the backend default.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes the cached value into target, or returns ErrMiss.
	Get(ctx context.Context, key string, target interface{}) error
	Delete(ctx context.Context, key string) error
}
