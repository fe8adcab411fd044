package goal

import (
	"context"
	"fmt"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/scoring"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	Actor *entity.User
	Type  string // Optional
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []entity.LogicalGoal
}

// ListGoalsUseCase handles listing the logical goals visible to a user.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute groups the visible goal snapshots into logical goals, highest
// attainment first.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	records, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	filtered := make([]entity.GoalRecord, 0, len(records))
	for _, record := range records {
		if !visible(input.Actor, record) {
			continue
		}
		if input.Type != "" && !valueobject.SameText(string(record.Type), input.Type) {
			continue
		}
		filtered = append(filtered, *record)
	}

	return &ListGoalsOutput{
		Goals: scoring.SortByAttainment(scoring.Group(filtered)),
	}, nil
}
