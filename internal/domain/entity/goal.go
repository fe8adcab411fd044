// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// GoalType represents the organizational scope of a goal.
type GoalType string

const (
	GoalTypeGlobal         GoalType = "Global"
	GoalTypeOrganizational GoalType = "Organizacional"
	GoalTypeFinancial      GoalType = "Financeiro"
	GoalTypeProcess        GoalType = "KPI / Processo"
	GoalTypeProjects       GoalType = "Projetos"
	GoalTypeOther          GoalType = "Outro"
)

// GoalTypes lists the goal types offered when creating a goal.
var GoalTypes = []GoalType{
	GoalTypeGlobal,
	GoalTypeOrganizational,
	GoalTypeFinancial,
	GoalTypeProcess,
	GoalTypeProjects,
}

// ParseGoalType matches raw against the known goal types, ignoring case and
// surrounding whitespace. An empty value maps to GoalTypeOther.
func ParseGoalType(raw string) (GoalType, bool) {
	if valueobject.NormalizeText(raw) == "" {
		return GoalTypeOther, true
	}
	for _, t := range GoalTypes {
		if valueobject.SameText(string(t), raw) {
			return t, true
		}
	}
	if valueobject.SameText(string(GoalTypeOther), raw) {
		return GoalTypeOther, true
	}
	return "", false
}

// GoalStatus represents the progress status of a goal snapshot.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "Em andamento"
	GoalStatusCompleted  GoalStatus = "Concluída"
)

// StatusForAttainment derives the status from an attainment percentage.
func StatusForAttainment(attainment float64) GoalStatus {
	if attainment >= 100 {
		return GoalStatusCompleted
	}
	return GoalStatusInProgress
}

// Rungs holds the textual threshold descriptions shown as guidance.
type Rungs struct {
	Zero    string // 0%
	Sixty   string // 60%
	Hundred string // 100%
	Over    string // 120%
}

// GoalRecord is one snapshot of a KPI or objective at a point in time.
// Several records sharing area, KPI name and key result are successive
// snapshots of the same logical goal.
type GoalRecord struct {
	ID               uuid.UUID
	CustomID         string
	Type             GoalType
	Directorate      string
	Area             string
	Objective        string
	KeyResult        string
	KPIName          string
	Weight           float64
	Attainment       *float64
	MonthlyResult    *float64
	YearToDateResult *float64
	Unit             string
	ReferenceDate    *time.Time
	Status           GoalStatus
	Deadline         string
	Formula          string
	Explanation      string
	Rungs            Rungs
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewGoalRecord creates a new GoalRecord with a fresh ID.
func NewGoalRecord(goalType GoalType, area, kpiName, keyResult string) *GoalRecord {
	now := time.Now().UTC()

	return &GoalRecord{
		ID:        uuid.New(),
		Type:      goalType,
		Area:      area,
		KPIName:   kpiName,
		KeyResult: keyResult,
		Status:    GoalStatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AttainmentValue returns the attainment percentage, treating an absent value as zero.
func (g *GoalRecord) AttainmentValue() float64 {
	if g.Attainment == nil {
		return 0
	}
	return *g.Attainment
}

// IsProject reports whether the goal is tracked through milestone steps.
func (g *GoalRecord) IsProject() bool {
	return valueobject.SameText(string(g.Type), string(GoalTypeProjects))
}

// Title returns the key result when it is meaningful, otherwise the KPI name.
func (g *GoalRecord) Title() string {
	if g.KeyResult != "" && g.KeyResult != "-" {
		return g.KeyResult
	}
	return g.KPIName
}

// LogicalGoal is the representative snapshot of a goal together with its
// full history, newest reference date first.
type LogicalGoal struct {
	GoalRecord
	History []GoalRecord
}
