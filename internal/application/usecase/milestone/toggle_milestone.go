package milestone

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// ToggleMilestoneInput represents the input for changing a milestone status.
type ToggleMilestoneInput struct {
	Actor       *entity.User
	MilestoneID uuid.UUID
	Status      string // Optional; empty flips the current status
}

// ToggleMilestoneOutput represents the output of changing a milestone status.
type ToggleMilestoneOutput struct {
	Milestone *entity.MilestoneStep
	Goals     []*entity.GoalRecord
}

// ToggleMilestoneUseCase marks a milestone done or pending and recomputes
// the attainment of the goals it drives.
type ToggleMilestoneUseCase struct {
	milestoneRepo adapter.MilestoneRepository
	syncer        *ProgressSyncer
}

// NewToggleMilestoneUseCase creates a new ToggleMilestoneUseCase instance.
func NewToggleMilestoneUseCase(milestoneRepo adapter.MilestoneRepository, syncer *ProgressSyncer) *ToggleMilestoneUseCase {
	return &ToggleMilestoneUseCase{
		milestoneRepo: milestoneRepo,
		syncer:        syncer,
	}
}

// Execute performs the status change.
func (uc *ToggleMilestoneUseCase) Execute(ctx context.Context, input ToggleMilestoneInput) (*ToggleMilestoneOutput, error) {
	if input.Actor == nil {
		return nil, forbidden("authentication required")
	}

	step, err := findStep(ctx, uc.milestoneRepo, input.MilestoneID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		if _, err := nextStatus(step.Status, input.Status); err != nil {
			return nil, err
		}
	}

	authorize := func(goals []*entity.GoalRecord) error {
		if input.Actor.IsAdmin() {
			return nil
		}
		for _, g := range goals {
			if input.Actor.CanSee(g.Area, g.Directorate) {
				return nil
			}
		}
		return forbidden("not authorized to update this milestone")
	}

	var changed *entity.MilestoneStep
	goals, err := uc.syncer.Apply(ctx, []entity.MilestoneStep{*step}, authorize, func(ctx context.Context) error {
		current, err := findStep(ctx, uc.milestoneRepo, step.ID)
		if err != nil {
			return err
		}
		status, err := nextStatus(current.Status, input.Status)
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.UpdateStatus(ctx, current.ID, status); err != nil {
			return fmt.Errorf("failed to update milestone status: %w", err)
		}
		current.Status = status
		changed = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ToggleMilestoneOutput{
		Milestone: changed,
		Goals:     goals,
	}, nil
}

func nextStatus(current entity.MilestoneStatus, requested string) (entity.MilestoneStatus, error) {
	switch entity.MilestoneStatus(strings.ToLower(strings.TrimSpace(requested))) {
	case "":
		if current == entity.MilestoneStatusDone {
			return entity.MilestoneStatusPending, nil
		}
		return entity.MilestoneStatusDone, nil
	case entity.MilestoneStatusDone:
		return entity.MilestoneStatusDone, nil
	case entity.MilestoneStatusPending:
		return entity.MilestoneStatusPending, nil
	}
	return "", domainerror.NewMilestoneError(
		domainerror.ErrCodeInvalidMilestoneStatus,
		"status must be pending or done",
		domainerror.ErrInvalidMilestoneStatus,
	)
}
