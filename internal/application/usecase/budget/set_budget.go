package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// SetBudgetInput represents the input for setting an area budget.
type SetBudgetInput struct {
	Actor  *entity.User
	Area   string
	Amount string // as typed, e.g. "R$ 15.000,00"
}

// SetBudgetOutput represents the output of setting an area budget.
type SetBudgetOutput struct {
	Budget *entity.AreaBudget
}

// SetBudgetUseCase handles setting the bonus budget of an area.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.ScoreCache
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.ScoreCache) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute stores the budget. Unparseable amounts are stored as zero.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Actor == nil || !input.Actor.IsAdmin() {
		return nil, forbidden("only administrators can set budgets")
	}

	area := strings.TrimSpace(input.Area)
	if area == "" {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeAreaNotSpecified,
			"area is required",
			domainerror.ErrAreaNotSpecified,
		)
	}

	budget := &entity.AreaBudget{
		Area:      area,
		Amount:    decimal.NewFromFloat(valueobject.CleanNonNegative(input.Amount)).Round(2),
		UpdatedAt: time.Now().UTC(),
	}

	if err := uc.budgetRepo.Save(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	invalidateScores(ctx, uc.cache)

	return &SetBudgetOutput{
		Budget: budget,
	}, nil
}
