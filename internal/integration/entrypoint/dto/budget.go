package dto

import (
	"sort"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting an area budget.
type SetBudgetRequest struct {
	Amount FlexString `json:"amount" binding:"required"`
}

// BudgetResponse represents an area budget.
type BudgetResponse struct {
	Area          string  `json:"area"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
}

// BudgetListResponse lists every configured budget, ordered by area.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts an area budget to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.AreaBudget) BudgetResponse {
	return BudgetResponse{
		Area:          b.Area,
		Amount:        toFloat(b.Amount),
		AmountDisplay: formatMoney(b.Amount),
	}
}

// ToBudgetListResponse converts the budget map to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets entity.Budgets) BudgetListResponse {
	areas := make([]string, 0, len(budgets))
	for area := range budgets {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	response := BudgetListResponse{Budgets: make([]BudgetResponse, 0, len(areas))}
	for _, area := range areas {
		response.Budgets = append(response.Budgets, ToBudgetResponse(&entity.AreaBudget{Area: area, Amount: budgets[area]}))
	}
	return response
}
