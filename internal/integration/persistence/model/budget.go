// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// BudgetModel represents the area_budgets table in the database.
type BudgetModel struct {
	Area      string          `gorm:"type:varchar(255);primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "area_budgets"
}

// ToEntity converts a BudgetModel to a domain AreaBudget entity.
func (m *BudgetModel) ToEntity() *entity.AreaBudget {
	return &entity.AreaBudget{
		Area:      m.Area,
		Amount:    m.Amount,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain AreaBudget entity.
func BudgetFromEntity(budget *entity.AreaBudget) *BudgetModel {
	return &BudgetModel{
		Area:      budget.Area,
		Amount:    budget.Amount,
		UpdatedAt: budget.UpdatedAt,
	}
}
