// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal record persistence operations.
type GoalRepository interface {
	// List retrieves every goal record snapshot.
	List(ctx context.Context) ([]*entity.GoalRecord, error)

	// FindByID retrieves a goal record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GoalRecord, error)

	// Save creates the goal record or replaces the stored one with the same ID.
	Save(ctx context.Context, goal *entity.GoalRecord) error

	// Delete removes a goal record.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every goal record and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
