package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/scoring"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// defaultIndividualScore is assumed when no individual evaluation is given.
const defaultIndividualScore = 100

// SimulateBonusInput represents the input for a bonus simulation. Scores
// left nil are taken from the current dashboards.
type SimulateBonusInput struct {
	Actor           *entity.User
	Salary          string
	Level           string   // policy level key, e.g. "analista"
	Multiplier      *float64 // overrides Level
	IndividualScore *float64
	CompanyScore    *float64
	AreaScore       *float64
	Area            string // area whose score is used; defaults to the actor's
	HireDate        string
}

// SimulateBonusOutput represents the simulation and the inputs it used.
type SimulateBonusOutput struct {
	CompanyScore    float64
	AreaScore       float64
	IndividualScore float64
	Multiplier      float64
	Result          scoring.SimulationResult
}

// SimulateBonusUseCase estimates an employee's PLR bonus.
type SimulateBonusUseCase struct {
	companyScore *GetCompanyScoreUseCase
	areaScore    *GetAreaScoreUseCase
	policy       valueobject.BonusPolicy
}

// NewSimulateBonusUseCase creates a new SimulateBonusUseCase instance.
func NewSimulateBonusUseCase(
	companyScore *GetCompanyScoreUseCase,
	areaScore *GetAreaScoreUseCase,
	policy valueobject.BonusPolicy,
) *SimulateBonusUseCase {
	return &SimulateBonusUseCase{
		companyScore: companyScore,
		areaScore:    areaScore,
		policy:       policy,
	}
}

// Execute runs the simulation.
func (uc *SimulateBonusUseCase) Execute(ctx context.Context, input SimulateBonusInput) (*SimulateBonusOutput, error) {
	salary := valueobject.CleanNumber(input.Salary)
	if salary < 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidSalary,
			"salary must not be negative",
			domainerror.ErrInvalidSalary,
		)
	}

	multiplier, err := uc.multiplier(input)
	if err != nil {
		return nil, err
	}

	var hireDate *time.Time
	if raw := strings.TrimSpace(input.HireDate); raw != "" {
		parsed, err := valueobject.ParseDate(raw)
		if err != nil {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidHireDate,
				"hire date must be YYYY-MM-DD or DD/MM/YYYY",
				domainerror.ErrInvalidHireDate,
			)
		}
		hireDate = &parsed
	}

	individual := float64(defaultIndividualScore)
	if input.IndividualScore != nil {
		individual = *input.IndividualScore
	}

	company, err := uc.resolveCompanyScore(ctx, input)
	if err != nil {
		return nil, err
	}
	area, err := uc.resolveAreaScore(ctx, input)
	if err != nil {
		return nil, err
	}

	if company < 0 || area < 0 || individual < 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidScore,
			"scores must not be negative",
			domainerror.ErrInvalidScore,
		)
	}

	result := scoring.Simulate(scoring.SimulationInput{
		CompanyScore:    company,
		AreaScore:       area,
		IndividualScore: individual,
		Salary:          decimal.NewFromFloat(salary),
		HireDate:        hireDate,
		LevelMultiplier: multiplier,
	}, uc.policy)

	return &SimulateBonusOutput{
		CompanyScore:    company,
		AreaScore:       area,
		IndividualScore: individual,
		Multiplier:      multiplier,
		Result:          result,
	}, nil
}

func (uc *SimulateBonusUseCase) multiplier(input SimulateBonusInput) (float64, error) {
	if input.Multiplier != nil {
		if *input.Multiplier <= 0 {
			return 0, domainerror.NewDashboardError(
				domainerror.ErrCodeUnknownLevel,
				"multiplier must be positive",
				domainerror.ErrUnknownLevel,
			)
		}
		return *input.Multiplier, nil
	}

	level := input.Level
	if strings.TrimSpace(level) == "" && len(uc.policy.Levels) > 0 {
		level = uc.policy.Levels[0].Key
	}
	m, ok := uc.policy.Multiplier(level)
	if !ok {
		return 0, domainerror.NewDashboardError(
			domainerror.ErrCodeUnknownLevel,
			"unknown level "+input.Level,
			domainerror.ErrUnknownLevel,
		)
	}
	return m, nil
}

func (uc *SimulateBonusUseCase) resolveCompanyScore(ctx context.Context, input SimulateBonusInput) (float64, error) {
	if input.CompanyScore != nil {
		return *input.CompanyScore, nil
	}
	output, err := uc.companyScore.Execute(ctx, GetCompanyScoreInput{Actor: input.Actor})
	if err != nil {
		return 0, err
	}
	return float64(output.Score), nil
}

// resolveAreaScore uses the area dashboard when an area can be determined;
// organization-wide users without an area simulate with an area score of 0.
func (uc *SimulateBonusUseCase) resolveAreaScore(ctx context.Context, input SimulateBonusInput) (float64, error) {
	if input.AreaScore != nil {
		return *input.AreaScore, nil
	}
	if input.Actor == nil || (input.Actor.SeesAllAreas() && strings.TrimSpace(input.Area) == "") {
		return 0, nil
	}
	output, err := uc.areaScore.Execute(ctx, GetAreaScoreInput{Actor: input.Actor, Area: input.Area})
	if err != nil {
		return 0, err
	}
	return float64(output.Breakdown.Score), nil
}
