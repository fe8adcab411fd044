// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/scoring"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// Scopes of the memoized dashboard results.
const (
	companyScope    = "company"
	areasScope      = "areas"
	areaScopePrefix = "area:"
)

// DefaultCacheTTL bounds how long a memoized dashboard result is served.
const DefaultCacheTTL = 5 * time.Minute

func areaScope(area string) string {
	return areaScopePrefix + valueobject.NormalizeText(area)
}

// cacheKey embeds the generation the result was computed in.
func cacheKey(generation int64, scope string) string {
	return fmt.Sprintf("dashboard:%d:%s", generation, scope)
}

// cached serves scope from cache when present and otherwise computes and
// stores it. The generation is read before computing, so a result racing an
// invalidation lands under a key nobody reads anymore. Cache failures degrade
// to recomputation.
func cached[T any](
	ctx context.Context,
	cache adapter.ScoreCache,
	scope string,
	ttl time.Duration,
	compute func(ctx context.Context) (*T, error),
) (*T, error) {
	if cache == nil {
		return compute(ctx)
	}

	generation, err := cache.Generation(ctx)
	if err != nil {
		slog.Warn("Score cache unavailable", "scope", scope, "error", err)
		return compute(ctx)
	}
	key := cacheKey(generation, scope)

	var hit T
	found, err := cache.Get(ctx, key, &hit)
	if err != nil {
		slog.Warn("Score cache read failed", "key", key, "error", err)
	} else if found {
		return &hit, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, key, value, ttl); err != nil {
		slog.Warn("Score cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// loadGoals reads every snapshot and folds it into logical goals.
func loadGoals(ctx context.Context, repo adapter.GoalRepository) ([]entity.LogicalGoal, error) {
	records, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	plain := make([]entity.GoalRecord, len(records))
	for i, r := range records {
		plain[i] = *r
	}
	return scoring.Group(plain), nil
}
