// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// List retrieves all users ordered by login.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a user by login. It returns nil without error when none exists.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// Save creates the user or replaces the stored one with the same ID.
	Save(ctx context.Context, user *entity.User) error

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
