package docstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

func TestGoalDocument_StoredThroughBSON(t *testing.T) {
	ref := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	attainment := 87.5
	goal := &entity.GoalRecord{
		ID:            uuid.New(),
		CustomID:      "PRJ-1",
		Type:          entity.GoalTypeProjects,
		Area:          "TI",
		KPIName:       "ERP",
		Weight:        20,
		Attainment:    &attainment,
		ReferenceDate: &ref,
		Status:        entity.GoalStatusInProgress,
		Rungs:         entity.Rungs{Hundred: "go-live"},
	}

	data, err := bson.Marshal(goalFromEntity(goal))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["_id"] != goal.ID.String() {
		t.Errorf("expected string _id %s, got %v", goal.ID, raw["_id"])
	}
	if raw["monthly_result"] != nil {
		t.Errorf("expected null monthly_result, got %v", raw["monthly_result"])
	}

	var doc goalDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := doc.toEntity()

	if got.ID != goal.ID || got.CustomID != "PRJ-1" || got.Area != "TI" {
		t.Errorf("identity not preserved: %+v", got)
	}
	if got.Attainment == nil || *got.Attainment != 87.5 {
		t.Errorf("expected attainment 87.5, got %v", got.Attainment)
	}
	if got.MonthlyResult != nil {
		t.Errorf("expected absent monthly result, got %v", *got.MonthlyResult)
	}
	if got.ReferenceDate == nil || !got.ReferenceDate.Equal(ref) || got.ReferenceDate.Location() != time.UTC {
		t.Errorf("expected reference date %v in UTC, got %v", ref, got.ReferenceDate)
	}
	if got.Rungs.Hundred != "go-live" {
		t.Errorf("expected rungs to be kept, got %+v", got.Rungs)
	}
}

func TestMilestoneDocument_UnlinkedGoal(t *testing.T) {
	step := entity.NewMilestoneStep(uuid.Nil, "PRJ-1", "", "Kickoff", 1)

	data, err := bson.Marshal(milestoneFromEntity(step))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if _, ok := raw["goal_id"]; ok {
		t.Error("expected goal_id to be omitted for steps without a goal")
	}

	var doc milestoneDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := doc.toEntity()
	if got.GoalID != uuid.Nil {
		t.Errorf("expected nil goal id, got %s", got.GoalID)
	}
	if got.Status != entity.MilestoneStatusPending || got.CustomID != "PRJ-1" {
		t.Errorf("unexpected step: %+v", got)
	}
}

func TestBudgetDocument_Amount(t *testing.T) {
	tests := []struct {
		name     string
		doc      budgetDocument
		expected string
	}{
		{name: "cents kept", doc: budgetFromEntity(&entity.AreaBudget{Area: "TI", Amount: decimal.RequireFromString("1234.5")}), expected: "1234.5"},
		{name: "stored with two places", doc: budgetDocument{Amount: "10.00"}, expected: "10"},
		{name: "corrupt amount", doc: budgetDocument{Amount: "abc"}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.amount(); !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	if doc := budgetFromEntity(&entity.AreaBudget{Amount: decimal.RequireFromString("7")}); doc.Amount != "7.00" {
		t.Errorf("expected fixed two-place amount, got %s", doc.Amount)
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	if parseID(id.String()) != id {
		t.Error("expected valid id to parse")
	}
	if parseID("") != uuid.Nil || parseID("not-a-uuid") != uuid.Nil {
		t.Error("expected empty and malformed ids to map to uuid.Nil")
	}
}
