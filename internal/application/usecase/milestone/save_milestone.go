package milestone

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// SaveMilestoneInput represents the input for creating or updating a milestone step.
type SaveMilestoneInput struct {
	Actor       *entity.User
	MilestoneID *uuid.UUID // nil creates a new step
	GoalID      *uuid.UUID // Optional
	CustomID    string
	Project     string
	Step        string
	Weight      string
	Deadline    string
	Status      string // Optional, defaults to pending on create
}

// SaveMilestoneOutput represents the output of saving a milestone step.
type SaveMilestoneOutput struct {
	Milestone *entity.MilestoneStep
	Created   bool
}

// SaveMilestoneUseCase handles milestone creation and update logic.
type SaveMilestoneUseCase struct {
	goalRepo      adapter.GoalRepository
	milestoneRepo adapter.MilestoneRepository
	syncer        *ProgressSyncer
}

// NewSaveMilestoneUseCase creates a new SaveMilestoneUseCase instance.
func NewSaveMilestoneUseCase(
	goalRepo adapter.GoalRepository,
	milestoneRepo adapter.MilestoneRepository,
	syncer *ProgressSyncer,
) *SaveMilestoneUseCase {
	return &SaveMilestoneUseCase{
		goalRepo:      goalRepo,
		milestoneRepo: milestoneRepo,
		syncer:        syncer,
	}
}

// Execute validates and persists the step, then refreshes the progress of
// the goals it drives before and after the change.
func (uc *SaveMilestoneUseCase) Execute(ctx context.Context, input SaveMilestoneInput) (*SaveMilestoneOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Step)
	if name == "" {
		return nil, domainerror.NewMilestoneError(
			domainerror.ErrCodeMilestoneStepRequired,
			"step description is required",
			domainerror.ErrMilestoneStepRequired,
		)
	}

	goalID := uuid.Nil
	if input.GoalID != nil {
		goalID = *input.GoalID
	}
	customID := strings.TrimSpace(input.CustomID)
	project := strings.TrimSpace(input.Project)
	if goalID == uuid.Nil && customID == "" && project == "" {
		return nil, domainerror.NewMilestoneError(
			domainerror.ErrCodeMilestoneUnlinked,
			"milestone must reference a goal",
			domainerror.ErrMilestoneUnlinked,
		)
	}

	if goalID != uuid.Nil {
		goal, err := uc.goalRepo.FindByID(ctx, goalID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return nil, domainerror.NewMilestoneError(
					domainerror.ErrCodeMilestoneUnlinked,
					"referenced goal does not exist",
					domainerror.ErrGoalNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find goal: %w", err)
		}
		if !goal.IsProject() {
			return nil, domainerror.NewMilestoneError(
				domainerror.ErrCodeMilestoneGoalNotProject,
				"milestones can only reference project goals",
				domainerror.ErrMilestoneGoalNotProject,
			)
		}
	}

	var step *entity.MilestoneStep
	var before []entity.MilestoneStep
	created := input.MilestoneID == nil
	if created {
		step = entity.NewMilestoneStep(goalID, customID, project, name, 0)
	} else {
		existing, err := findStep(ctx, uc.milestoneRepo, *input.MilestoneID)
		if err != nil {
			return nil, err
		}
		before = append(before, *existing)
		step = existing
		step.GoalID = goalID
		step.CustomID = customID
		step.Project = project
		step.Step = name
		step.UpdatedAt = time.Now().UTC()
	}

	step.Weight = valueobject.CleanNonNegative(input.Weight)
	step.Deadline = input.Deadline
	if input.Status != "" {
		status, err := nextStatus(step.Status, input.Status)
		if err != nil {
			return nil, err
		}
		step.Status = status
	}

	_, err := uc.syncer.Apply(ctx, append(before, *step), nil, func(ctx context.Context) error {
		if err := uc.milestoneRepo.Save(ctx, step); err != nil {
			return fmt.Errorf("failed to save milestone: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SaveMilestoneOutput{
		Milestone: step,
		Created:   created,
	}, nil
}
