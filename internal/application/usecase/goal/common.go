// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// findGoal loads a goal record, translating a missing record into a GoalError.
func findGoal(ctx context.Context, repo adapter.GoalRepository, id uuid.UUID) (*entity.GoalRecord, error) {
	goal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}

func requireAdmin(actor *entity.User) error {
	if actor == nil || !actor.IsAdmin() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalAdminOnly,
			"only administrators can change goals",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return nil
}

func visible(actor *entity.User, goal *entity.GoalRecord) bool {
	return actor != nil && actor.CanSee(goal.Area, goal.Directorate)
}

// invalidateScores drops cached dashboard results after a write. A cache
// failure never fails the write; the cache refuses reads until the
// invalidation goes through.
func invalidateScores(ctx context.Context, cache adapter.ScoreCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate score cache", "error", err)
	}
}
