package milestone

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func findStep(ctx context.Context, repo adapter.MilestoneRepository, id uuid.UUID) (*entity.MilestoneStep, error) {
	step, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrMilestoneNotFound) {
			return nil, domainerror.NewMilestoneError(
				domainerror.ErrCodeMilestoneNotFound,
				"milestone not found",
				domainerror.ErrMilestoneNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find milestone: %w", err)
	}
	return step, nil
}

func requireAdmin(actor *entity.User) error {
	if actor == nil || !actor.IsAdmin() {
		return forbidden("only administrators can edit milestones")
	}
	return nil
}

func forbidden(message string) error {
	return domainerror.NewMilestoneError(
		domainerror.ErrCodeMilestoneForbidden,
		message,
		domainerror.ErrForbidden,
	)
}
