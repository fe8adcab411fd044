package budget

import (
	"context"
	"log/slog"

	"github.com/goal-tracker/backend/internal/application/adapter"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func forbidden(message string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDashboardForbidden,
		message,
		domainerror.ErrForbidden,
	)
}

// invalidateScores drops cached dashboard results after a budget change.
// The cache keeps refusing reads until a failed invalidation goes through.
func invalidateScores(ctx context.Context, cache adapter.ScoreCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate score cache", "error", err)
	}
}
