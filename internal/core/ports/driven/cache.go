package driven

import (
	"context"
	"time"
)

// CompletionCache stores model completions keyed by a request fingerprint.
type CompletionCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
