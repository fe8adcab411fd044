// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// rungCount is the number of threshold descriptions kept per goal (0/60/100/120%).
const rungCount = 4

// GoalModel represents the goal_records table in the database.
type GoalModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomID         string         `gorm:"type:varchar(100);index"`
	Type             string         `gorm:"type:varchar(50);not null;index"`
	Directorate      string         `gorm:"type:varchar(255)"`
	Area             string         `gorm:"type:varchar(255);not null;index"`
	Objective        string         `gorm:"type:text"`
	KeyResult        string         `gorm:"type:text"`
	KPIName          string         `gorm:"column:kpi_name;type:varchar(255)"`
	Weight           float64        `gorm:"not null;default:0"`
	Attainment       *float64       `gorm:"column:attainment"`
	MonthlyResult    *float64       `gorm:"column:monthly_result"`
	YearToDateResult *float64       `gorm:"column:year_to_date_result"`
	Unit             string         `gorm:"type:varchar(50)"`
	ReferenceDate    *time.Time     `gorm:"type:date;index"`
	Status           string         `gorm:"type:varchar(30);not null"`
	Deadline         string         `gorm:"type:varchar(50)"`
	Formula          string         `gorm:"type:text"`
	Explanation      string         `gorm:"type:text"`
	Rungs            pq.StringArray `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goal_records"
}

// ToEntity converts a GoalModel to a domain GoalRecord entity.
func (m *GoalModel) ToEntity() *entity.GoalRecord {
	rungs := make([]string, rungCount)
	copy(rungs, m.Rungs)

	return &entity.GoalRecord{
		ID:               m.ID,
		CustomID:         m.CustomID,
		Type:             entity.GoalType(m.Type),
		Directorate:      m.Directorate,
		Area:             m.Area,
		Objective:        m.Objective,
		KeyResult:        m.KeyResult,
		KPIName:          m.KPIName,
		Weight:           m.Weight,
		Attainment:       m.Attainment,
		MonthlyResult:    m.MonthlyResult,
		YearToDateResult: m.YearToDateResult,
		Unit:             m.Unit,
		ReferenceDate:    m.ReferenceDate,
		Status:           entity.GoalStatus(m.Status),
		Deadline:         m.Deadline,
		Formula:          m.Formula,
		Explanation:      m.Explanation,
		Rungs: entity.Rungs{
			Zero:    rungs[0],
			Sixty:   rungs[1],
			Hundred: rungs[2],
			Over:    rungs[3],
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain GoalRecord entity.
func GoalFromEntity(goal *entity.GoalRecord) *GoalModel {
	return &GoalModel{
		ID:               goal.ID,
		CustomID:         goal.CustomID,
		Type:             string(goal.Type),
		Directorate:      goal.Directorate,
		Area:             goal.Area,
		Objective:        goal.Objective,
		KeyResult:        goal.KeyResult,
		KPIName:          goal.KPIName,
		Weight:           goal.Weight,
		Attainment:       goal.Attainment,
		MonthlyResult:    goal.MonthlyResult,
		YearToDateResult: goal.YearToDateResult,
		Unit:             goal.Unit,
		ReferenceDate:    goal.ReferenceDate,
		Status:           string(goal.Status),
		Deadline:         goal.Deadline,
		Formula:          goal.Formula,
		Explanation:      goal.Explanation,
		Rungs:            pq.StringArray{goal.Rungs.Zero, goal.Rungs.Sixty, goal.Rungs.Hundred, goal.Rungs.Over},
		CreatedAt:        goal.CreatedAt,
		UpdatedAt:        goal.UpdatedAt,
	}
}
