// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MilestoneStatus represents the completion state of a milestone step.
type MilestoneStatus string

const (
	MilestoneStatusPending MilestoneStatus = "pending"
	MilestoneStatusDone    MilestoneStatus = "done"
)

// MilestoneStep is a checklist item of a project-type goal. Its weight
// contributes to the goal's derived attainment once it is done.
type MilestoneStep struct {
	ID        uuid.UUID
	GoalID    uuid.UUID // uuid.Nil when linked only by custom id or project name
	CustomID  string
	Project   string
	Step      string
	Weight    float64
	Deadline  string
	Status    MilestoneStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMilestoneStep creates a new pending MilestoneStep.
func NewMilestoneStep(goalID uuid.UUID, customID, project, step string, weight float64) *MilestoneStep {
	now := time.Now().UTC()

	return &MilestoneStep{
		ID:        uuid.New(),
		GoalID:    goalID,
		CustomID:  customID,
		Project:   project,
		Step:      step,
		Weight:    weight,
		Status:    MilestoneStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsDone reports whether the step has been completed.
func (m *MilestoneStep) IsDone() bool {
	return m.Status == MilestoneStatusDone
}
