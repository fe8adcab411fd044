package scoring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

func TestSimulate(t *testing.T) {
	policy := valueobject.DefaultBonusPolicy()

	tests := []struct {
		name           string
		hireDate       *time.Time
		expectedGross  string
		expectedFactor string
		expectedDays   int
		eligible       bool
	}{
		{name: "no hire date", hireDate: nil, expectedGross: "14100", expectedFactor: "1", eligible: true},
		{name: "hired before reference year", hireDate: date("2020-05-10"), expectedGross: "14100", expectedFactor: "1", eligible: true},
		{name: "hired on first day of reference year", hireDate: date("2025-01-01"), expectedGross: "14100", expectedFactor: "1", expectedDays: 365, eligible: true},
		{name: "hired on cutoff", hireDate: date("2025-09-01"), expectedGross: "0", expectedFactor: "0", eligible: false},
		{name: "hired after reference year", hireDate: date("2026-02-01"), expectedGross: "0", expectedFactor: "0", eligible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Simulate(SimulationInput{
				CompanyScore:    100,
				AreaScore:       80,
				IndividualScore: 100,
				Salary:          decimal.NewFromInt(5000),
				HireDate:        tt.hireDate,
				LevelMultiplier: 3,
			}, policy)

			if result.Eligible != tt.eligible {
				t.Errorf("expected eligible %v, got %v", tt.eligible, result.Eligible)
			}
			if !result.Gross.Equal(decimal.RequireFromString(tt.expectedGross)) {
				t.Errorf("expected gross %s, got %s", tt.expectedGross, result.Gross)
			}
			if !result.TimeFactor.Equal(decimal.RequireFromString(tt.expectedFactor)) {
				t.Errorf("expected time factor %s, got %s", tt.expectedFactor, result.TimeFactor)
			}
			if result.DaysWorked != tt.expectedDays {
				t.Errorf("expected %d days, got %d", tt.expectedDays, result.DaysWorked)
			}
			if !result.WeightedScore.Equal(decimal.RequireFromString("0.94")) {
				t.Errorf("expected weighted score 0.94, got %s", result.WeightedScore)
			}
		})
	}
}

func TestSimulate_IneligibleReason(t *testing.T) {
	result := Simulate(SimulationInput{
		CompanyScore: 100, AreaScore: 100, IndividualScore: 100,
		Salary: decimal.NewFromInt(5000), HireDate: date("2025-10-15"), LevelMultiplier: 1.5,
	}, valueobject.DefaultBonusPolicy())

	expected := "Data de admissão a partir de 01/09/2025 torna o colaborador inelegível."
	if result.IneligibilityReason != expected {
		t.Errorf("expected %q, got %q", expected, result.IneligibilityReason)
	}
	if !result.Net.IsZero() || !result.Tax.IsZero() {
		t.Errorf("expected zero tax and net, got %s / %s", result.Tax, result.Net)
	}
}

func TestSimulate_ProratesByDaysWorked(t *testing.T) {
	result := Simulate(SimulationInput{
		CompanyScore: 100, AreaScore: 100, IndividualScore: 100,
		Salary: decimal.NewFromInt(3650), HireDate: date("2025-07-01"), LevelMultiplier: 1,
	}, valueobject.DefaultBonusPolicy())

	// July 1 to December 31 inclusive.
	if result.DaysWorked != 184 {
		t.Fatalf("expected 184 days, got %d", result.DaysWorked)
	}
	if !result.Gross.Equal(decimal.NewFromInt(1840)) {
		t.Errorf("expected gross 1840, got %s", result.Gross)
	}
	if !result.Net.Equal(result.Gross) {
		t.Errorf("expected exempt bonus, got net %s", result.Net)
	}
}

func TestSimulate_AppliesTax(t *testing.T) {
	result := Simulate(SimulationInput{
		CompanyScore: 100, AreaScore: 100, IndividualScore: 100,
		Salary: decimal.NewFromInt(4000), LevelMultiplier: 5,
	}, valueobject.DefaultBonusPolicy())

	if !result.Gross.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected gross 20000, got %s", result.Gross)
	}
	if !result.Tax.Equal(decimal.RequireFromString("2376.22")) {
		t.Errorf("expected tax 2376.22, got %s", result.Tax)
	}
	if !result.Net.Equal(decimal.RequireFromString("17623.78")) {
		t.Errorf("expected net 17623.78, got %s", result.Net)
	}
}
