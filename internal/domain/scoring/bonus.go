package scoring

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// SimulationInput holds what an employee provides to estimate a bonus.
type SimulationInput struct {
	CompanyScore    float64
	AreaScore       float64
	IndividualScore float64
	Salary          decimal.Decimal
	HireDate        *time.Time
	LevelMultiplier float64
}

// SimulationResult is the estimated bonus. WeightedScore and TimeFactor are
// ratios (0.94 means 94%).
type SimulationResult struct {
	WeightedScore       decimal.Decimal
	TimeFactor          decimal.Decimal
	DaysWorked          int
	Eligible            bool
	IneligibilityReason string
	Gross               decimal.Decimal
	Tax                 decimal.Decimal
	Net                 decimal.Decimal
}

const hoursPerDay = 24

// Simulate computes gross and net bonus for input under policy. Employees
// hired on or after the policy cutoff are ineligible; those hired during the
// reference year are prorated by days worked until December 31.
func Simulate(input SimulationInput, policy valueobject.BonusPolicy) SimulationResult {
	hundred := decimal.NewFromInt(100)

	weighted := decimal.NewFromFloat(input.CompanyScore).Mul(decimal.NewFromFloat(policy.CompanyWeight)).
		Add(decimal.NewFromFloat(input.AreaScore).Mul(decimal.NewFromFloat(policy.AreaWeight))).
		Add(decimal.NewFromFloat(input.IndividualScore).Mul(decimal.NewFromFloat(policy.IndividualWeight))).
		Div(hundred)

	result := SimulationResult{
		WeightedScore: weighted,
		TimeFactor:    decimal.NewFromInt(1),
		Eligible:      true,
	}

	if input.HireDate != nil {
		hire := dateOnly(*input.HireDate)
		switch {
		case !hire.Before(policy.Cutoff):
			result.Eligible = false
			result.IneligibilityReason = policy.IneligibilityReason()
			result.TimeFactor = decimal.Zero
		case hire.Year() == policy.ReferenceYear:
			endOfYear := time.Date(policy.ReferenceYear, time.December, 31, 0, 0, 0, 0, time.UTC)
			days := math.Abs(endOfYear.Sub(hire).Hours()) / hoursPerDay
			result.DaysWorked = int(math.Ceil(days)) + 1
			result.TimeFactor = decimal.NewFromInt(int64(result.DaysWorked)).Div(decimal.NewFromInt(365))
		}
	}

	gross := decimal.Zero
	if result.Eligible {
		gross = input.Salary.
			Mul(decimal.NewFromFloat(input.LevelMultiplier)).
			Mul(weighted).
			Mul(result.TimeFactor).
			Round(2)
	}

	tax := valueobject.CalculatePLRNet(gross)
	result.Gross = tax.Gross
	result.Tax = tax.Tax
	result.Net = tax.Net

	return result
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
