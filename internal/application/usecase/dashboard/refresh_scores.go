package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// RefreshScoresOutput summarizes a refresh run.
type RefreshScoresOutput struct {
	CompanyScore int
	Areas        int
}

// RefreshScoresUseCase recomputes the company and portfolio dashboards and
// primes the score cache with them.
type RefreshScoresUseCase struct {
	companyScore *GetCompanyScoreUseCase
	areasSummary *GetAreasSummaryUseCase
	cache        adapter.ScoreCache
}

// NewRefreshScoresUseCase creates a new RefreshScoresUseCase instance.
func NewRefreshScoresUseCase(
	companyScore *GetCompanyScoreUseCase,
	areasSummary *GetAreasSummaryUseCase,
	cache adapter.ScoreCache,
) *RefreshScoresUseCase {
	return &RefreshScoresUseCase{
		companyScore: companyScore,
		areasSummary: areasSummary,
		cache:        cache,
	}
}

// Execute recomputes from the store, bypassing any cached value.
func (uc *RefreshScoresUseCase) Execute(ctx context.Context) (*RefreshScoresOutput, error) {
	generation := int64(-1)
	if uc.cache != nil {
		gen, err := uc.cache.Generation(ctx)
		if err != nil {
			slog.Warn("Score cache unavailable, refresh will not prime it", "error", err)
		} else {
			generation = gen
		}
	}

	company, err := uc.companyScore.compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute company score: %w", err)
	}
	summary, err := uc.areasSummary.compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute areas summary: %w", err)
	}

	if generation >= 0 {
		uc.prime(ctx, cacheKey(generation, companyScope), company, uc.companyScore.ttl)
		uc.prime(ctx, cacheKey(generation, areasScope), summary, uc.areasSummary.ttl)
	}

	return &RefreshScoresOutput{
		CompanyScore: company.Score,
		Areas:        len(summary.Areas),
	}, nil
}

func (uc *RefreshScoresUseCase) prime(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := uc.cache.Set(ctx, key, value, ttl); err != nil {
		slog.Warn("Score cache write failed", "key", key, "error", err)
	}
}
