// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for area budget persistence operations.
type BudgetRepository interface {
	// List retrieves the configured budget of every area.
	List(ctx context.Context) (entity.Budgets, error)

	// Save sets the budget of an area, creating it when missing.
	Save(ctx context.Context, budget *entity.AreaBudget) error
}
