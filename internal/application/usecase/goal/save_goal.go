package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// SaveGoalInput represents the input for creating or updating a goal record.
// Numeric fields arrive as typed by the user and are coerced; a nil pointer
// means the value was not supplied.
type SaveGoalInput struct {
	Actor            *entity.User
	GoalID           *uuid.UUID // nil creates a new record
	CustomID         string
	Type             string
	Directorate      string
	Area             string
	Objective        string
	KeyResult        string
	KPIName          string
	Weight           string
	Attainment       *string
	MonthlyResult    *string
	YearToDateResult *string
	Unit             string
	ReferenceDate    string
	Deadline         string
	Formula          string
	Explanation      string
	Rungs            entity.Rungs
}

// SaveGoalOutput represents the output of saving a goal record.
type SaveGoalOutput struct {
	Goal    *entity.GoalRecord
	Created bool
}

// SaveGoalUseCase handles goal creation and update logic.
type SaveGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.ScoreCache
}

// NewSaveGoalUseCase creates a new SaveGoalUseCase instance.
func NewSaveGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.ScoreCache) *SaveGoalUseCase {
	return &SaveGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute validates and persists the goal record.
func (uc *SaveGoalUseCase) Execute(ctx context.Context, input SaveGoalInput) (*SaveGoalOutput, error) {
	if err := requireAdmin(input.Actor); err != nil {
		return nil, err
	}

	area := strings.TrimSpace(input.Area)
	kpiName := strings.TrimSpace(input.KPIName)
	keyResult := strings.TrimSpace(input.KeyResult)

	if area == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalMissingArea,
			"area is required",
			domainerror.ErrGoalMissingArea,
		)
	}
	if kpiName == "" && keyResult == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalMissingIdentity,
			"kpi name or key result is required",
			domainerror.ErrGoalMissingIdentity,
		)
	}

	goalType, ok := entity.ParseGoalType(input.Type)
	if !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			fmt.Sprintf("unknown goal type %q", input.Type),
			domainerror.ErrInvalidGoalType,
		)
	}

	var referenceDate *time.Time
	if raw := strings.TrimSpace(input.ReferenceDate); raw != "" {
		parsed, err := valueobject.ParseDate(raw)
		if err != nil {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidReferenceDate,
				"reference date must be YYYY-MM-DD or DD/MM/YYYY",
				domainerror.ErrInvalidReferenceDate,
			)
		}
		referenceDate = &parsed
	}

	var goal *entity.GoalRecord
	created := input.GoalID == nil
	if created {
		goal = entity.NewGoalRecord(goalType, area, kpiName, keyResult)
	} else {
		existing, err := findGoal(ctx, uc.goalRepo, *input.GoalID)
		if err != nil {
			return nil, err
		}
		goal = existing
		goal.Type = goalType
		goal.Area = area
		goal.KPIName = kpiName
		goal.KeyResult = keyResult
		goal.UpdatedAt = time.Now().UTC()
	}

	goal.CustomID = strings.TrimSpace(input.CustomID)
	goal.Directorate = strings.TrimSpace(input.Directorate)
	goal.Objective = input.Objective
	goal.Weight = valueobject.CleanNonNegative(input.Weight)
	goal.Attainment = nonNegative(input.Attainment)
	goal.MonthlyResult = number(input.MonthlyResult)
	goal.YearToDateResult = number(input.YearToDateResult)
	goal.Unit = input.Unit
	goal.ReferenceDate = referenceDate
	goal.Deadline = input.Deadline
	goal.Formula = input.Formula
	goal.Explanation = input.Explanation
	goal.Rungs = input.Rungs
	goal.Status = entity.StatusForAttainment(goal.AttainmentValue())

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	invalidateScores(ctx, uc.cache)

	return &SaveGoalOutput{
		Goal:    goal,
		Created: created,
	}, nil
}

func number(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	v := valueobject.CleanNumber(*raw)
	return &v
}

func nonNegative(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	v := valueobject.CleanNonNegative(*raw)
	return &v
}
