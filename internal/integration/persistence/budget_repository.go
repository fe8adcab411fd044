// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// List retrieves the budget of every area.
func (r *budgetRepository) List(ctx context.Context) (entity.Budgets, error) {
	var budgetModels []model.BudgetModel
	if err := r.db.WithContext(ctx).Find(&budgetModels).Error; err != nil {
		return nil, err
	}

	budgets := make(entity.Budgets, len(budgetModels))
	for _, b := range budgetModels {
		budgets[b.Area] = b.Amount
	}
	return budgets, nil
}

// Save upserts the budget of an area.
func (r *budgetRepository) Save(ctx context.Context, budget *entity.AreaBudget) error {
	budgetModel := model.BudgetFromEntity(budget)
	return r.db.WithContext(ctx).Save(budgetModel).Error
}
