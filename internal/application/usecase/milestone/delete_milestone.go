package milestone

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
)

// DeleteMilestoneInput represents the input for milestone deletion.
type DeleteMilestoneInput struct {
	Actor       *entity.User
	MilestoneID uuid.UUID
}

// DeleteMilestoneOutput represents the output of milestone deletion.
type DeleteMilestoneOutput struct {
	Success bool
}

// DeleteMilestoneUseCase handles milestone deletion logic.
type DeleteMilestoneUseCase struct {
	milestoneRepo adapter.MilestoneRepository
	syncer        *ProgressSyncer
}

// NewDeleteMilestoneUseCase creates a new DeleteMilestoneUseCase instance.
func NewDeleteMilestoneUseCase(milestoneRepo adapter.MilestoneRepository, syncer *ProgressSyncer) *DeleteMilestoneUseCase {
	return &DeleteMilestoneUseCase{
		milestoneRepo: milestoneRepo,
		syncer:        syncer,
	}
}

// Execute removes the step and refreshes the progress of the goals it drove.
func (uc *DeleteMilestoneUseCase) Execute(ctx context.Context, input DeleteMilestoneInput) (*DeleteMilestoneOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	step, err := findStep(ctx, uc.milestoneRepo, input.MilestoneID)
	if err != nil {
		return nil, err
	}

	_, err = uc.syncer.Apply(ctx, []entity.MilestoneStep{*step}, nil, func(ctx context.Context) error {
		if err := uc.milestoneRepo.Delete(ctx, step.ID); err != nil {
			return fmt.Errorf("failed to delete milestone: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteMilestoneOutput{
		Success: true,
	}, nil
}
