package dashboard

import (
	"context"
	"time"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/scoring"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// GetCompanyScoreInput represents the input for the company dashboard.
type GetCompanyScoreInput struct {
	Actor *entity.User
}

// GetCompanyScoreOutput represents the company result and the goals behind it.
type GetCompanyScoreOutput struct {
	Score int
	Goals []entity.LogicalGoal
}

// GetCompanyScoreUseCase computes the company-wide score.
type GetCompanyScoreUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ScoreCache
	policy   valueobject.BonusPolicy
	ttl      time.Duration
}

// NewGetCompanyScoreUseCase creates a new GetCompanyScoreUseCase instance.
func NewGetCompanyScoreUseCase(
	goalRepo adapter.GoalRepository,
	cache adapter.ScoreCache,
	policy valueobject.BonusPolicy,
	ttl time.Duration,
) *GetCompanyScoreUseCase {
	return &GetCompanyScoreUseCase{
		goalRepo: goalRepo,
		cache:    cache,
		policy:   policy,
		ttl:      ttl,
	}
}

// Execute returns the company score. Every role may see it.
func (uc *GetCompanyScoreUseCase) Execute(ctx context.Context, input GetCompanyScoreInput) (*GetCompanyScoreOutput, error) {
	return cached(ctx, uc.cache, companyScope, uc.ttl, uc.compute)
}

func (uc *GetCompanyScoreUseCase) compute(ctx context.Context) (*GetCompanyScoreOutput, error) {
	goals, err := loadGoals(ctx, uc.goalRepo)
	if err != nil {
		return nil, err
	}

	return &GetCompanyScoreOutput{
		Score: scoring.CompanyScore(goals, uc.policy),
		Goals: scoring.SortByAttainment(scoring.CompanyGoals(goals)),
	}, nil
}
