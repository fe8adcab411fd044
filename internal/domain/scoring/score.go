package scoring

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// Round rounds half away from zero for non-negative scores (82.5 becomes 83).
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// IsGlobal reports whether a goal is company-wide.
func IsGlobal(goal entity.GoalRecord) bool {
	return valueobject.SameText(string(goal.Type), string(entity.GoalTypeGlobal))
}

// CompanyGoals returns the company-wide goals.
func CompanyGoals(goals []entity.LogicalGoal) []entity.LogicalGoal {
	var result []entity.LogicalGoal
	for _, g := range goals {
		if IsGlobal(g.GoalRecord) {
			result = append(result, g)
		}
	}
	return result
}

// CompanyScore is the weighted attainment of the company-wide goals. A goal
// whose KPI name carries the policy's bonus keyword is excluded from the
// average and instead adds up to policy.ExtraPoints on top of it.
func CompanyScore(goals []entity.LogicalGoal, policy valueobject.BonusPolicy) int {
	var (
		totalWeight float64
		weightedSum float64
		extra       *entity.LogicalGoal
	)

	for _, g := range CompanyGoals(goals) {
		if policy.IsExtraGoal(g.KPIName) {
			if extra == nil {
				found := g
				extra = &found
			}
			continue
		}
		totalWeight += g.Weight
		weightedSum += g.AttainmentValue() * g.Weight
	}

	base := 0.0
	if totalWeight > 0 {
		base = weightedSum / totalWeight
	}
	if extra != nil {
		base += math.Min(extra.AttainmentValue(), 100) / 100 * policy.ExtraPoints
	}

	return Round(base)
}

// AreaGoals returns the non-global goals whose area or directorate matches area.
func AreaGoals(goals []entity.LogicalGoal, area string) []entity.LogicalGoal {
	var result []entity.LogicalGoal
	for _, g := range goals {
		if IsGlobal(g.GoalRecord) {
			continue
		}
		if valueobject.SameText(g.Area, area) || valueobject.SameText(g.Directorate, area) {
			result = append(result, g)
		}
	}
	return result
}

// AreaScore is the weighted attainment of the goals of area. When every
// weight is zero the plain mean is used; an area without goals scores 0.
func AreaScore(goals []entity.LogicalGoal, area string) int {
	return weightedScore(AreaGoals(goals, area))
}

func weightedScore(goals []entity.LogicalGoal) int {
	if len(goals) == 0 {
		return 0
	}

	var totalWeight, weightedSum, attainmentSum float64
	for _, g := range goals {
		totalWeight += g.Weight
		weightedSum += g.AttainmentValue() * g.Weight
		attainmentSum += g.AttainmentValue()
	}

	if totalWeight == 0 {
		return Round(attainmentSum / float64(len(goals)))
	}
	return Round(weightedSum / totalWeight)
}

// GoalContribution is a goal's share of its area score.
type GoalContribution struct {
	Goal         entity.LogicalGoal
	Contribution float64
}

// AreaBreakdownResult itemizes how an area score is composed.
type AreaBreakdownResult struct {
	Area        string
	Score       int
	TotalWeight float64
	Goals       []GoalContribution
}

// AreaBreakdown lists the goals of area by weight, heaviest first, together
// with the points each contributes to the area score.
func AreaBreakdown(goals []entity.LogicalGoal, area string) AreaBreakdownResult {
	areaGoals := AreaGoals(goals, area)

	sorted := make([]entity.LogicalGoal, len(areaGoals))
	copy(sorted, areaGoals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	var totalWeight float64
	for _, g := range sorted {
		totalWeight += g.Weight
	}

	contributions := make([]GoalContribution, 0, len(sorted))
	for _, g := range sorted {
		contribution := 0.0
		if totalWeight > 0 {
			contribution = g.AttainmentValue() * g.Weight / totalWeight
		}
		contributions = append(contributions, GoalContribution{Goal: g, Contribution: contribution})
	}

	return AreaBreakdownResult{
		Area:        area,
		Score:       weightedScore(areaGoals),
		TotalWeight: totalWeight,
		Goals:       contributions,
	}
}

// AreaStatus labels an area score for the portfolio view.
type AreaStatus string

const (
	AreaStatusAchieved AreaStatus = "Meta Batida"
	AreaStatusAverage  AreaStatus = "Na média"
	AreaStatusBelow    AreaStatus = "Abaixo"
)

// StatusForScore returns the portfolio label of an area score.
func StatusForScore(score int) AreaStatus {
	switch {
	case score >= 100:
		return AreaStatusAchieved
	case score >= 80:
		return AreaStatusAverage
	default:
		return AreaStatusBelow
	}
}

// AreaSummary is one row of the all-areas portfolio view.
type AreaSummary struct {
	Area             string
	Score            int
	Status           AreaStatus
	GoalCount        int
	Budget           decimal.Decimal
	ProjectedPayment decimal.Decimal
}

// AreasSummary scores every area that owns non-global goals and projects its
// payout as budget × score / 100. Areas are keyed by their exact name and
// returned highest score first.
func AreasSummary(goals []entity.LogicalGoal, budgets entity.Budgets) []AreaSummary {
	byArea := make(map[string][]entity.LogicalGoal)
	var areas []string

	for _, g := range goals {
		if IsGlobal(g.GoalRecord) {
			continue
		}
		if _, ok := byArea[g.Area]; !ok {
			areas = append(areas, g.Area)
		}
		byArea[g.Area] = append(byArea[g.Area], g)
	}

	hundred := decimal.NewFromInt(100)
	summary := make([]AreaSummary, 0, len(areas))
	for _, area := range areas {
		score := weightedScore(byArea[area])
		budget := budgets.For(area)
		summary = append(summary, AreaSummary{
			Area:             area,
			Score:            score,
			Status:           StatusForScore(score),
			GoalCount:        len(byArea[area]),
			Budget:           budget,
			ProjectedPayment: budget.Mul(decimal.NewFromInt(int64(score))).Div(hundred),
		})
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Score > summary[j].Score
	})

	return summary
}

// TotalProjection sums the projected payments of an areas summary.
func TotalProjection(summary []AreaSummary) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summary {
		total = total.Add(s.ProjectedPayment)
	}
	return total
}
