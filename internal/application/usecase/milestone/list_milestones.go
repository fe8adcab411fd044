package milestone

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/scoring"
)

// ListMilestonesInput represents the input for listing the milestones of a goal.
type ListMilestonesInput struct {
	Actor  *entity.User
	GoalID uuid.UUID
}

// ListMilestonesOutput represents the output of listing the milestones of a goal.
type ListMilestonesOutput struct {
	Milestones []entity.MilestoneStep
	Progress   float64
}

// ListMilestonesUseCase handles listing the checklist of a goal.
type ListMilestonesUseCase struct {
	goalRepo      adapter.GoalRepository
	milestoneRepo adapter.MilestoneRepository
}

// NewListMilestonesUseCase creates a new ListMilestonesUseCase instance.
func NewListMilestonesUseCase(goalRepo adapter.GoalRepository, milestoneRepo adapter.MilestoneRepository) *ListMilestonesUseCase {
	return &ListMilestonesUseCase{
		goalRepo:      goalRepo,
		milestoneRepo: milestoneRepo,
	}
}

// Execute returns the steps linked to the goal and the progress they add up
// to. Only project goals carry steps.
func (uc *ListMilestonesUseCase) Execute(ctx context.Context, input ListMilestonesInput) (*ListMilestonesOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
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

	if input.Actor == nil || !input.Actor.CanSee(goal.Area, goal.Directorate) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to view this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	linked := []entity.MilestoneStep{}
	if goal.IsProject() {
		all, err := uc.milestoneRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list milestones: %w", err)
		}
		steps := make([]entity.MilestoneStep, len(all))
		for i, m := range all {
			steps[i] = *m
		}
		linked = append(linked, scoring.LinkedMilestones(steps, *goal)...)
	}

	return &ListMilestonesOutput{
		Milestones: linked,
		Progress:   scoring.MilestoneProgress(linked),
	}, nil
}
