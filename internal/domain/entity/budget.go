// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AreaBudget is the target bonus amount configured for an area. It is only
// used to project payouts at portfolio level.
type AreaBudget struct {
	Area      string
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// Budgets maps an area name to its configured budget amount.
type Budgets map[string]decimal.Decimal

// For returns the budget of area, or zero when none is configured.
func (b Budgets) For(area string) decimal.Decimal {
	if amount, ok := b[area]; ok {
		return amount
	}
	return decimal.Zero
}
