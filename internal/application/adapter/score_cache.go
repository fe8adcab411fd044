// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ScoreCache memoizes computed dashboard results by scope key.
//
// Callers read the generation before computing a result and store it under a
// key that embeds that generation, so a result computed from data older than
// the last Invalidate is never served.
type ScoreCache interface {
	// Generation returns the current cache generation.
	Generation(ctx context.Context) (int64, error)

	// Get loads the cached value of key into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Invalidate advances the generation and drops every cached dashboard result.
	Invalidate(ctx context.Context) error
}
