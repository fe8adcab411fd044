package scoring

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// MilestoneBelongsTo reports whether step is linked to goal. Custom ids are
// compared when both sides carry one, then the internal goal id, then the
// project name against the goal's KPI name.
func MilestoneBelongsTo(step entity.MilestoneStep, goal entity.GoalRecord) bool {
	if step.CustomID != "" && goal.CustomID != "" {
		return valueobject.SameText(step.CustomID, goal.CustomID)
	}
	if step.GoalID != uuid.Nil {
		return step.GoalID == goal.ID
	}
	return step.Project != "" && valueobject.SameText(step.Project, goal.KPIName)
}

// LinkedMilestones returns the steps linked to goal.
func LinkedMilestones(steps []entity.MilestoneStep, goal entity.GoalRecord) []entity.MilestoneStep {
	var linked []entity.MilestoneStep
	for _, s := range steps {
		if MilestoneBelongsTo(s, goal) {
			linked = append(linked, s)
		}
	}
	return linked
}

// MilestoneProgress is the completed share of the total step weight, as a
// percentage rounded to one decimal. Without weight the progress is 0.
func MilestoneProgress(steps []entity.MilestoneStep) float64 {
	total := decimal.Zero
	done := decimal.Zero
	for _, s := range steps {
		w := decimal.NewFromFloat(s.Weight)
		total = total.Add(w)
		if s.IsDone() {
			done = done.Add(w)
		}
	}

	if !total.IsPositive() {
		return 0
	}

	return done.Mul(decimal.NewFromInt(100)).Div(total).Round(1).InexactFloat64()
}

// ApplyMilestoneProgress returns a copy of goal whose attainment and status
// are derived from its milestone steps.
func ApplyMilestoneProgress(goal entity.GoalRecord, steps []entity.MilestoneStep) entity.GoalRecord {
	progress := MilestoneProgress(steps)
	goal.Attainment = &progress
	goal.Status = entity.StatusForAttainment(progress)
	return goal
}
