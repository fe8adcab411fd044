package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/scoring"
)

// GetAreaScoreInput represents the input for an area dashboard. Area users
// always get their own area.
type GetAreaScoreInput struct {
	Actor *entity.User
	Area  string
}

// GetAreaScoreOutput represents the area result and its composition.
type GetAreaScoreOutput struct {
	Breakdown scoring.AreaBreakdownResult
}

// GetAreaScoreUseCase computes the score of one area.
type GetAreaScoreUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ScoreCache
	ttl      time.Duration
}

// NewGetAreaScoreUseCase creates a new GetAreaScoreUseCase instance.
func NewGetAreaScoreUseCase(goalRepo adapter.GoalRepository, cache adapter.ScoreCache, ttl time.Duration) *GetAreaScoreUseCase {
	return &GetAreaScoreUseCase{
		goalRepo: goalRepo,
		cache:    cache,
		ttl:      ttl,
	}
}

// Execute returns the area score and breakdown.
func (uc *GetAreaScoreUseCase) Execute(ctx context.Context, input GetAreaScoreInput) (*GetAreaScoreOutput, error) {
	area, err := resolveArea(input.Actor, input.Area)
	if err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, areaScope(area), uc.ttl, func(ctx context.Context) (*GetAreaScoreOutput, error) {
		goals, err := loadGoals(ctx, uc.goalRepo)
		if err != nil {
			return nil, err
		}
		return &GetAreaScoreOutput{
			Breakdown: scoring.AreaBreakdown(goals, area),
		}, nil
	})
}

// resolveArea picks the area a user asks about. Area users are pinned to
// their own area; everyone else must name one.
func resolveArea(actor *entity.User, requested string) (string, error) {
	if actor == nil {
		return "", forbidden("authentication required")
	}

	requested = strings.TrimSpace(requested)
	if !actor.SeesAllAreas() {
		if requested != "" && !actor.CanSee(requested, "") {
			return "", forbidden("area users can only see their own area")
		}
		return actor.Area, nil
	}

	if requested == "" {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeAreaNotSpecified,
			"area is required",
			domainerror.ErrAreaNotSpecified,
		)
	}
	return requested, nil
}

func forbidden(message string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDashboardForbidden,
		message,
		domainerror.ErrForbidden,
	)
}
