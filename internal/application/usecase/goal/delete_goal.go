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

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	Actor  *entity.User
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Success bool
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ScoreCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.ScoreCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	invalidateScores(ctx, uc.cache)

	return &DeleteGoalOutput{
		Success: true,
	}, nil
}

// DeleteAllGoalsInput represents the input for wiping the goal store.
type DeleteAllGoalsInput struct {
	Actor *entity.User
}

// DeleteAllGoalsOutput represents the output of wiping the goal store.
type DeleteAllGoalsOutput struct {
	Deleted int64
}

// DeleteAllGoalsUseCase removes every goal record.
type DeleteAllGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ScoreCache
}

// NewDeleteAllGoalsUseCase creates a new DeleteAllGoalsUseCase instance.
func NewDeleteAllGoalsUseCase(goalRepo adapter.GoalRepository, cache adapter.ScoreCache) *DeleteAllGoalsUseCase {
	return &DeleteAllGoalsUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute removes every goal record.
func (uc *DeleteAllGoalsUseCase) Execute(ctx context.Context, input DeleteAllGoalsInput) (*DeleteAllGoalsOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	deleted, err := uc.goalRepo.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete goals: %w", err)
	}

	slog.Info("All goal records deleted", "count", deleted, "by", input.Actor.Login)
	invalidateScores(ctx, uc.cache)

	return &DeleteAllGoalsOutput{
		Deleted: deleted,
	}, nil
}
