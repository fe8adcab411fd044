// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MilestoneRepository defines the interface for milestone step persistence operations.
type MilestoneRepository interface {
	// List retrieves every milestone step.
	List(ctx context.Context) ([]*entity.MilestoneStep, error)

	// FindByID retrieves a milestone step by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MilestoneStep, error)

	// Save creates the milestone step or replaces the stored one with the same ID.
	Save(ctx context.Context, step *entity.MilestoneStep) error

	// UpdateStatus changes only the status of a milestone step.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MilestoneStatus) error

	// Delete removes a milestone step.
	Delete(ctx context.Context, id uuid.UUID) error
}
