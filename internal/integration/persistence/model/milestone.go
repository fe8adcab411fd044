// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// MilestoneModel represents the milestones table in the database.
type MilestoneModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GoalID    *uuid.UUID `gorm:"type:uuid;index"`
	CustomID  string     `gorm:"type:varchar(100);index"`
	Project   string     `gorm:"type:varchar(255)"`
	Step      string     `gorm:"type:text;not null"`
	Weight    float64    `gorm:"not null;default:0"`
	Deadline  string     `gorm:"type:varchar(50)"`
	Status    string     `gorm:"type:varchar(10);not null;default:'pending'"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the MilestoneModel.
func (MilestoneModel) TableName() string {
	return "milestones"
}

// ToEntity converts a MilestoneModel to a domain MilestoneStep entity.
func (m *MilestoneModel) ToEntity() *entity.MilestoneStep {
	goalID := uuid.Nil
	if m.GoalID != nil {
		goalID = *m.GoalID
	}

	return &entity.MilestoneStep{
		ID:        m.ID,
		GoalID:    goalID,
		CustomID:  m.CustomID,
		Project:   m.Project,
		Step:      m.Step,
		Weight:    m.Weight,
		Deadline:  m.Deadline,
		Status:    entity.MilestoneStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MilestoneFromEntity creates a MilestoneModel from a domain MilestoneStep entity.
func MilestoneFromEntity(step *entity.MilestoneStep) *MilestoneModel {
	var goalID *uuid.UUID
	if step.GoalID != uuid.Nil {
		id := step.GoalID
		goalID = &id
	}

	return &MilestoneModel{
		ID:        step.ID,
		GoalID:    goalID,
		CustomID:  step.CustomID,
		Project:   step.Project,
		Step:      step.Step,
		Weight:    step.Weight,
		Deadline:  step.Deadline,
		Status:    string(step.Status),
		CreatedAt: step.CreatedAt,
		UpdatedAt: step.UpdatedAt,
	}
}
