package cache

import (
	"context"
	"time"
)

// Cache is the contract for the response cache layer. Implementations
// (Redis in production, in-memory in tests) marshal values to JSON.
type Cache interface {
	// Get reads key into dest. found=false means cache miss and dest is
	// left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, e.g.
	// "books:list:*" after a catalog write.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
