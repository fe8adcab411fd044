package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

// SaveMilestoneRequest represents the request body for creating or updating
// a milestone step. At least one of goal_id, custom_id or project links it.
type SaveMilestoneRequest struct {
	ID       string     `json:"id" binding:"omitempty,uuid"`
	GoalID   string     `json:"goal_id" binding:"omitempty,uuid"`
	CustomID string     `json:"custom_id"`
	Project  string     `json:"project"`
	Step     string     `json:"step"`
	Weight   FlexString `json:"weight"`
	Deadline string     `json:"deadline"`
	Status   string     `json:"status" binding:"omitempty,oneof=pending done"`
}

// ToggleMilestoneRequest represents the request body for changing a step
// status. An empty status flips the current one.
type ToggleMilestoneRequest struct {
	Status string `json:"status" binding:"omitempty,oneof=pending done"`
}

// MilestoneResponse represents a milestone step in API responses.
type MilestoneResponse struct {
	ID        string    `json:"id"`
	GoalID    *string   `json:"goal_id"`
	CustomID  string    `json:"custom_id,omitempty"`
	Project   string    `json:"project,omitempty"`
	Step      string    `json:"step"`
	Weight    float64   `json:"weight"`
	Deadline  string    `json:"deadline,omitempty"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MilestoneListResponse lists the steps of a goal with the derived progress.
type MilestoneListResponse struct {
	Milestones []MilestoneResponse `json:"milestones"`
	Progress   float64             `json:"progress"`
}

// ToggleMilestoneResponse returns the step and the goals it updated.
type ToggleMilestoneResponse struct {
	Milestone MilestoneResponse `json:"milestone"`
	Goals     []GoalResponse    `json:"goals"`
}

// ToMilestoneResponse converts a milestone step to a MilestoneResponse DTO.
func ToMilestoneResponse(m *entity.MilestoneStep) MilestoneResponse {
	response := MilestoneResponse{
		ID:        m.ID.String(),
		CustomID:  m.CustomID,
		Project:   m.Project,
		Step:      m.Step,
		Weight:    m.Weight,
		Deadline:  m.Deadline,
		Status:    string(m.Status),
		UpdatedAt: m.UpdatedAt,
	}
	if m.GoalID != uuid.Nil {
		goalID := m.GoalID.String()
		response.GoalID = &goalID
	}
	return response
}

// ToMilestoneListResponse converts the steps of a goal.
func ToMilestoneListResponse(steps []entity.MilestoneStep, progress float64) MilestoneListResponse {
	response := MilestoneListResponse{
		Milestones: make([]MilestoneResponse, 0, len(steps)),
		Progress:   progress,
	}
	for i := range steps {
		response.Milestones = append(response.Milestones, ToMilestoneResponse(&steps[i]))
	}
	return response
}

// ToToggleMilestoneResponse converts a toggle result.
func ToToggleMilestoneResponse(m *entity.MilestoneStep, goals []*entity.GoalRecord) ToggleMilestoneResponse {
	response := ToggleMilestoneResponse{
		Milestone: ToMilestoneResponse(m),
		Goals:     make([]GoalResponse, 0, len(goals)),
	}
	for _, g := range goals {
		response.Goals = append(response.Goals, ToGoalResponse(g))
	}
	return response
}
