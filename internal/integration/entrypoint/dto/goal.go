package dto

import (
	"time"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// RungsPayload carries the threshold descriptions of a goal.
type RungsPayload struct {
	Zero    string `json:"zero"`
	Sixty   string `json:"sixty"`
	Hundred string `json:"hundred"`
	Over    string `json:"over"`
}

// SaveGoalRequest represents the request body for creating or updating a goal
// snapshot. Numeric fields accept numbers or locale-formatted strings.
type SaveGoalRequest struct {
	CustomID         string       `json:"custom_id"`
	Type             string       `json:"type"`
	Directorate      string       `json:"directorate"`
	Area             string       `json:"area" binding:"required"`
	Objective        string       `json:"objective"`
	KeyResult        string       `json:"key_result"`
	KPIName          string       `json:"kpi_name"`
	Weight           FlexString   `json:"weight"`
	Attainment       *FlexString  `json:"attainment"`
	MonthlyResult    *FlexString  `json:"monthly_result"`
	YearToDateResult *FlexString  `json:"ytd_result"`
	Unit             string       `json:"unit"`
	ReferenceDate    string       `json:"reference_date"`
	Deadline         string       `json:"deadline"`
	Formula          string       `json:"formula"`
	Explanation      string       `json:"explanation"`
	Rungs            RungsPayload `json:"rungs"`
}

// ToRungs converts the payload to the domain value.
func (r RungsPayload) ToRungs() entity.Rungs {
	return entity.Rungs{Zero: r.Zero, Sixty: r.Sixty, Hundred: r.Hundred, Over: r.Over}
}

// GoalResponse represents a single goal snapshot in API responses. The
// *_display fields are pt-BR formatted for direct rendering.
type GoalResponse struct {
	ID                      string       `json:"id"`
	CustomID                string       `json:"custom_id,omitempty"`
	Type                    string       `json:"type"`
	Directorate             string       `json:"directorate,omitempty"`
	Area                    string       `json:"area"`
	Objective               string       `json:"objective,omitempty"`
	KeyResult               string       `json:"key_result,omitempty"`
	KPIName                 string       `json:"kpi_name,omitempty"`
	Title                   string       `json:"title"`
	Weight                  float64      `json:"weight"`
	Attainment              *float64     `json:"attainment"`
	AttainmentDisplay       string       `json:"attainment_display"`
	Band                    string       `json:"band"`
	MonthlyResult           *float64     `json:"monthly_result"`
	MonthlyResultDisplay    string       `json:"monthly_result_display"`
	YearToDateResult        *float64     `json:"ytd_result"`
	YearToDateResultDisplay string       `json:"ytd_result_display"`
	Unit                    string       `json:"unit,omitempty"`
	ReferenceDate           *string      `json:"reference_date"`
	ReferenceDateDisplay    string       `json:"reference_date_display"`
	Status                  string       `json:"status"`
	Deadline                string       `json:"deadline,omitempty"`
	Formula                 string       `json:"formula,omitempty"`
	Explanation             string       `json:"explanation,omitempty"`
	Rungs                   RungsPayload `json:"rungs"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

// LogicalGoalResponse is the head snapshot of a logical goal and its history.
type LogicalGoalResponse struct {
	GoalResponse
	History []GoalResponse `json:"history"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []LogicalGoalResponse `json:"goals"`
}

// DeleteAllGoalsResponse reports how many snapshots were removed.
type DeleteAllGoalsResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToGoalResponse converts a goal record to a GoalResponse DTO.
func ToGoalResponse(g *entity.GoalRecord) GoalResponse {
	response := GoalResponse{
		ID:                      g.ID.String(),
		CustomID:                g.CustomID,
		Type:                    string(g.Type),
		Directorate:             g.Directorate,
		Area:                    g.Area,
		Objective:               g.Objective,
		KeyResult:               g.KeyResult,
		KPIName:                 g.KPIName,
		Title:                   g.Title(),
		Weight:                  g.Weight,
		Attainment:              g.Attainment,
		AttainmentDisplay:       valueobject.FormatPercent(g.AttainmentValue()),
		Band:                    string(valueobject.BandFor(g.AttainmentValue())),
		MonthlyResult:           g.MonthlyResult,
		MonthlyResultDisplay:    valueobject.FormatSmart(g.MonthlyResult, g.Unit),
		YearToDateResult:        g.YearToDateResult,
		YearToDateResultDisplay: valueobject.FormatSmart(g.YearToDateResult, g.Unit),
		Unit:                    g.Unit,
		ReferenceDateDisplay:    valueobject.SafeDateDisplay(""),
		Status:                  string(g.Status),
		Deadline:                g.Deadline,
		Formula:                 g.Formula,
		Explanation:             g.Explanation,
		Rungs: RungsPayload{
			Zero:    g.Rungs.Zero,
			Sixty:   g.Rungs.Sixty,
			Hundred: g.Rungs.Hundred,
			Over:    g.Rungs.Over,
		},
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}

	if g.ReferenceDate != nil {
		date := g.ReferenceDate.Format("2006-01-02")
		response.ReferenceDate = &date
		response.ReferenceDateDisplay = valueobject.SafeDateDisplay(date)
	}

	return response
}

// ToLogicalGoalResponse converts a logical goal with its history.
func ToLogicalGoalResponse(g entity.LogicalGoal) LogicalGoalResponse {
	head := g.GoalRecord
	response := LogicalGoalResponse{
		GoalResponse: ToGoalResponse(&head),
		History:      make([]GoalResponse, 0, len(g.History)),
	}
	for i := range g.History {
		response.History = append(response.History, ToGoalResponse(&g.History[i]))
	}
	return response
}

// ToGoalListResponse converts logical goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []entity.LogicalGoal) GoalListResponse {
	response := GoalListResponse{Goals: make([]LogicalGoalResponse, 0, len(goals))}
	for _, g := range goals {
		response.Goals = append(response.Goals, ToLogicalGoalResponse(g))
	}
	return response
}
