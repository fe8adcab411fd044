package scoring

import (
	"testing"
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

func f(v float64) *float64 { return &v }

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func record(area, kpi, kr string, attainment *float64, ref string) entity.GoalRecord {
	r := entity.GoalRecord{Area: area, KPIName: kpi, KeyResult: kr, Attainment: attainment}
	if ref != "" {
		r.ReferenceDate = date(ref)
	}
	return r
}

func TestGroup_PicksMostRecentSnapshot(t *testing.T) {
	records := []entity.GoalRecord{
		record("Sales", "Revenue", "-", f(80), "2025-01-01"),
		record("Sales", "Revenue", "-", f(90), "2025-02-01"),
	}

	goals := Group(records)

	if len(goals) != 1 {
		t.Fatalf("expected 1 logical goal, got %d", len(goals))
	}
	if goals[0].AttainmentValue() != 90 {
		t.Errorf("expected head attainment 90, got %v", goals[0].AttainmentValue())
	}
	if len(goals[0].History) != 2 {
		t.Errorf("expected history of 2, got %d", len(goals[0].History))
	}
	if !goals[0].History[0].ReferenceDate.Equal(*date("2025-02-01")) {
		t.Errorf("expected newest snapshot first, got %v", goals[0].History[0].ReferenceDate)
	}
}

func TestGroup_KeyIsCaseAndWhitespaceInsensitive(t *testing.T) {
	records := []entity.GoalRecord{
		record("Sales ", "Revenue", "Q1", f(10), "2025-01-01"),
		record("sales", "REVENUE", "q1", f(20), "2025-02-01"),
		record("Sales", "Revenue", "Q2", f(30), "2025-02-01"),
	}

	goals := Group(records)

	if len(goals) != 2 {
		t.Fatalf("expected 2 logical goals, got %d", len(goals))
	}
	if goals[0].KeyResult != "q1" || len(goals[0].History) != 2 {
		t.Errorf("unexpected first group: %+v", goals[0])
	}
	if goals[1].KeyResult != "Q2" {
		t.Errorf("expected groups in first-seen order, got %s", goals[1].KeyResult)
	}
}

func TestGroup_DiscardsIncompleteRecords(t *testing.T) {
	records := []entity.GoalRecord{
		record("", "Revenue", "", f(10), ""),
		record("Sales", "", "", f(10), ""),
		record("Sales", "", "Close deals", f(10), ""),
	}

	goals := Group(records)

	if len(goals) != 1 {
		t.Fatalf("expected 1 logical goal, got %d", len(goals))
	}
	if goals[0].KeyResult != "Close deals" {
		t.Errorf("unexpected goal kept: %+v", goals[0])
	}
}

func TestGroup_HeadSelection(t *testing.T) {
	tests := []struct {
		name       string
		records    []entity.GoalRecord
		expectedID int
	}{
		{
			name: "prefers result over newer attainment",
			records: []entity.GoalRecord{
				{Area: "A", KPIName: "K", Attainment: f(50), ReferenceDate: date("2025-03-01")},
				{Area: "A", KPIName: "K", Attainment: f(40), MonthlyResult: f(12), ReferenceDate: date("2025-02-01")},
			},
			expectedID: 1,
		},
		{
			name: "year to date result counts",
			records: []entity.GoalRecord{
				{Area: "A", KPIName: "K", ReferenceDate: date("2025-03-01")},
				{Area: "A", KPIName: "K", YearToDateResult: f(7), ReferenceDate: date("2025-01-01")},
			},
			expectedID: 1,
		},
		{
			name: "zero results are ignored",
			records: []entity.GoalRecord{
				{Area: "A", KPIName: "K", MonthlyResult: f(0), ReferenceDate: date("2025-03-01")},
				{Area: "A", KPIName: "K", Attainment: f(0), ReferenceDate: date("2025-02-01")},
			},
			expectedID: 1,
		},
		{
			name: "falls back to most recent",
			records: []entity.GoalRecord{
				{Area: "A", KPIName: "K", ReferenceDate: date("2025-01-01")},
				{Area: "A", KPIName: "K", ReferenceDate: date("2025-03-01")},
			},
			expectedID: 1,
		},
		{
			name: "missing date sorts as oldest",
			records: []entity.GoalRecord{
				{Area: "A", KPIName: "K", Attainment: f(1)},
				{Area: "A", KPIName: "K", Attainment: f(2), ReferenceDate: date("1999-01-01")},
			},
			expectedID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.records {
				tt.records[i].CustomID = string(rune('0' + i))
			}

			goals := Group(tt.records)

			expected := string(rune('0' + tt.expectedID))
			if len(goals) != 1 || goals[0].CustomID != expected {
				t.Errorf("expected head %s, got %+v", expected, goals)
			}
		})
	}
}

func TestGroup_DoesNotModifyInput(t *testing.T) {
	records := []entity.GoalRecord{
		record("A", "K", "", f(1), "2025-01-01"),
		record("A", "K", "", f(2), "2025-02-01"),
	}

	Group(records)

	if records[0].AttainmentValue() != 1 || records[1].AttainmentValue() != 2 {
		t.Error("expected input order to be preserved")
	}
}

func TestGroup_IdempotentOnHeads(t *testing.T) {
	records := []entity.GoalRecord{
		record("Sales", "Revenue", "-", f(80), "2025-01-01"),
		record("Sales", "Revenue", "-", f(90), "2025-02-01"),
		record("Ops", "Uptime", "", f(99), "2025-02-01"),
		record("Ops", "Tickets", "", nil, ""),
	}

	first := Group(records)
	second := Group(Heads(first))

	if len(first) != len(second) {
		t.Fatalf("expected %d groups, got %d", len(first), len(second))
	}
	for i := range second {
		if len(second[i].History) != 1 {
			t.Errorf("expected single-record history, got %d", len(second[i].History))
		}
		if GroupKey(second[i].GoalRecord) != GroupKey(first[i].GoalRecord) {
			t.Errorf("group %d changed identity", i)
		}
		if second[i].AttainmentValue() != first[i].AttainmentValue() {
			t.Errorf("group %d changed head", i)
		}
	}
}

func TestSortByAttainment(t *testing.T) {
	goals := []entity.LogicalGoal{
		{GoalRecord: entity.GoalRecord{KPIName: "a", Attainment: f(50)}},
		{GoalRecord: entity.GoalRecord{KPIName: "b", Attainment: f(90)}},
		{GoalRecord: entity.GoalRecord{KPIName: "c", Attainment: f(50)}},
		{GoalRecord: entity.GoalRecord{KPIName: "d"}},
	}

	sorted := SortByAttainment(goals)

	expected := []string{"b", "a", "c", "d"}
	for i, name := range expected {
		if sorted[i].KPIName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, sorted[i].KPIName)
		}
	}
	if goals[0].KPIName != "a" {
		t.Error("expected input to be left untouched")
	}
}
