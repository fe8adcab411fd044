package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/scoring"
)

// GetAreasSummaryInput represents the input for the portfolio view.
type GetAreasSummaryInput struct {
	Actor *entity.User
}

// GetAreasSummaryOutput represents every area's score and projected payout.
type GetAreasSummaryOutput struct {
	Areas           []scoring.AreaSummary
	TotalProjection decimal.Decimal
}

// GetAreasSummaryUseCase computes the all-areas portfolio view.
type GetAreasSummaryUseCase struct {
	goalRepo   adapter.GoalRepository
	budgetRepo adapter.BudgetRepository
	cache      adapter.ScoreCache
	ttl        time.Duration
}

// NewGetAreasSummaryUseCase creates a new GetAreasSummaryUseCase instance.
func NewGetAreasSummaryUseCase(
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.ScoreCache,
	ttl time.Duration,
) *GetAreasSummaryUseCase {
	return &GetAreasSummaryUseCase{
		goalRepo:   goalRepo,
		budgetRepo: budgetRepo,
		cache:      cache,
		ttl:        ttl,
	}
}

// Execute returns the summary. Only administrators and the CEO may see it.
func (uc *GetAreasSummaryUseCase) Execute(ctx context.Context, input GetAreasSummaryInput) (*GetAreasSummaryOutput, error) {
	if input.Actor == nil || !input.Actor.SeesAllAreas() {
		return nil, forbidden("the areas summary is restricted to administrators and the CEO")
	}

	return cached(ctx, uc.cache, areasScope, uc.ttl, uc.compute)
}

func (uc *GetAreasSummaryUseCase) compute(ctx context.Context) (*GetAreasSummaryOutput, error) {
	goals, err := loadGoals(ctx, uc.goalRepo)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	summary := scoring.AreasSummary(goals, budgets)
	return &GetAreasSummaryOutput{
		Areas:           summary,
		TotalProjection: scoring.TotalProjection(summary),
	}, nil
}
