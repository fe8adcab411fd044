package scoring

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

func step(weight float64, status entity.MilestoneStatus) entity.MilestoneStep {
	return entity.MilestoneStep{ID: uuid.New(), Weight: weight, Status: status}
}

func TestMilestoneProgress(t *testing.T) {
	tests := []struct {
		name     string
		steps    []entity.MilestoneStep
		expected float64
	}{
		{
			name:     "partial completion",
			steps:    []entity.MilestoneStep{step(30, entity.MilestoneStatusDone), step(70, entity.MilestoneStatusPending)},
			expected: 30,
		},
		{
			name:     "rounded to one decimal",
			steps:    []entity.MilestoneStep{step(1, entity.MilestoneStatusDone), step(2, entity.MilestoneStatusPending)},
			expected: 33.3,
		},
		{
			name:     "all done",
			steps:    []entity.MilestoneStep{step(1, entity.MilestoneStatusDone), step(1, entity.MilestoneStatusDone)},
			expected: 100,
		},
		{
			name:     "no weight",
			steps:    []entity.MilestoneStep{step(0, entity.MilestoneStatusDone)},
			expected: 0,
		},
		{
			name:     "no steps",
			steps:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MilestoneProgress(tt.steps); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMilestoneProgress_ToggleOffDecreasesByWeightShare(t *testing.T) {
	steps := []entity.MilestoneStep{
		step(20, entity.MilestoneStatusDone),
		step(35, entity.MilestoneStatusDone),
		step(45, entity.MilestoneStatusPending),
	}
	before := MilestoneProgress(steps)

	steps[1].Status = entity.MilestoneStatusPending
	after := MilestoneProgress(steps)

	if math.Abs((before-after)-35) > 0.1 {
		t.Errorf("expected progress to drop by 35, dropped by %v", before-after)
	}
}

func TestApplyMilestoneProgress(t *testing.T) {
	goal := entity.GoalRecord{ID: uuid.New(), KPIName: "ERP", Status: entity.GoalStatusCompleted}

	updated := ApplyMilestoneProgress(goal, []entity.MilestoneStep{
		step(30, entity.MilestoneStatusDone),
		step(70, entity.MilestoneStatusPending),
	})

	if updated.AttainmentValue() != 30 {
		t.Errorf("expected attainment 30, got %v", updated.AttainmentValue())
	}
	if updated.Status != entity.GoalStatusInProgress {
		t.Errorf("expected in progress, got %s", updated.Status)
	}
	if goal.Attainment != nil {
		t.Error("expected original goal to be unchanged")
	}

	completed := ApplyMilestoneProgress(goal, []entity.MilestoneStep{step(10, entity.MilestoneStatusDone)})
	if completed.Status != entity.GoalStatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
}

func TestMilestoneBelongsTo(t *testing.T) {
	goalID := uuid.New()
	goal := entity.GoalRecord{ID: goalID, CustomID: "PRJ-01", KPIName: "Novo ERP"}
	goalWithoutCustomID := entity.GoalRecord{ID: goalID, KPIName: "Novo ERP"}

	tests := []struct {
		name     string
		step     entity.MilestoneStep
		goal     entity.GoalRecord
		expected bool
	}{
		{name: "custom id match", step: entity.MilestoneStep{CustomID: " prj-01"}, goal: goal, expected: true},
		{name: "custom id wins over goal id", step: entity.MilestoneStep{CustomID: "PRJ-02", GoalID: goalID}, goal: goal, expected: false},
		{name: "goal id match", step: entity.MilestoneStep{GoalID: goalID}, goal: goalWithoutCustomID, expected: true},
		{name: "goal id mismatch", step: entity.MilestoneStep{GoalID: uuid.New(), Project: "Novo ERP"}, goal: goalWithoutCustomID, expected: false},
		{name: "project name match", step: entity.MilestoneStep{Project: "novo erp "}, goal: goalWithoutCustomID, expected: true},
		{name: "project name mismatch", step: entity.MilestoneStep{Project: "CRM"}, goal: goalWithoutCustomID, expected: false},
		{name: "no linkage", step: entity.MilestoneStep{}, goal: entity.GoalRecord{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MilestoneBelongsTo(tt.step, tt.goal); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLinkedMilestones(t *testing.T) {
	goal := entity.GoalRecord{ID: uuid.New(), KPIName: "ERP"}
	steps := []entity.MilestoneStep{
		{GoalID: goal.ID, Step: "a"},
		{Project: "ERP", Step: "b"},
		{Project: "CRM", Step: "c"},
	}

	linked := LinkedMilestones(steps, goal)

	if len(linked) != 2 {
		t.Fatalf("expected 2 linked steps, got %d", len(linked))
	}
}
