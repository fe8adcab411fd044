// Package scoring holds the pure goal aggregation and scoring rules: grouping
// snapshots into logical goals, weighted attainment at company and area level,
// milestone-derived progress and the bonus simulation.
package scoring

import (
	"sort"
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

var epoch = time.Unix(0, 0).UTC()

// GroupKey returns the identity of the logical goal a record belongs to.
func GroupKey(record entity.GoalRecord) string {
	identifier := record.KPIName + "-" + record.KeyResult
	return valueobject.NormalizeText(record.Area) + "-" + valueobject.NormalizeText(identifier)
}

// Groupable reports whether a record carries enough identity to be grouped.
func Groupable(record entity.GoalRecord) bool {
	return record.Area != "" && (record.KPIName != "" || record.KeyResult != "")
}

// Group folds goal snapshots into logical goals. Each group's history is
// sorted newest reference date first and the head is picked from it; groups
// are returned in the order their keys were first seen. The input is not modified.
func Group(records []entity.GoalRecord) []entity.LogicalGoal {
	groups := make(map[string][]entity.GoalRecord)
	var keys []string

	for _, record := range records {
		if !Groupable(record) {
			continue
		}
		key := GroupKey(record)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], record)
	}

	result := make([]entity.LogicalGoal, 0, len(keys))
	for _, key := range keys {
		history := groups[key]
		sort.SliceStable(history, func(i, j int) bool {
			return referenceTime(history[i]).After(referenceTime(history[j]))
		})

		result = append(result, entity.LogicalGoal{
			GoalRecord: selectHead(history),
			History:    history,
		})
	}

	return result
}

func referenceTime(record entity.GoalRecord) time.Time {
	if record.ReferenceDate == nil {
		return epoch
	}
	return *record.ReferenceDate
}

// selectHead picks the most representative snapshot: the newest one with a
// non-zero monthly or year-to-date result, else the newest with an
// attainment, else the newest overall.
func selectHead(sorted []entity.GoalRecord) entity.GoalRecord {
	for _, record := range sorted {
		if nonZero(record.MonthlyResult) || nonZero(record.YearToDateResult) {
			return record
		}
	}
	for _, record := range sorted {
		if record.Attainment != nil {
			return record
		}
	}
	return sorted[0]
}

func nonZero(v *float64) bool {
	return v != nil && *v != 0
}

// Heads returns the head snapshot of each logical goal.
func Heads(goals []entity.LogicalGoal) []entity.GoalRecord {
	heads := make([]entity.GoalRecord, len(goals))
	for i, g := range goals {
		heads[i] = g.GoalRecord
	}
	return heads
}

// SortByAttainment returns the goals ordered by attainment, highest first.
// Ties keep their relative order.
func SortByAttainment(goals []entity.LogicalGoal) []entity.LogicalGoal {
	sorted := make([]entity.LogicalGoal, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AttainmentValue() > sorted[j].AttainmentValue()
	})
	return sorted
}
