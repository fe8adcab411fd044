package docstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

type rungsDocument struct {
	Zero    string `bson:"zero,omitempty"`
	Sixty   string `bson:"sixty,omitempty"`
	Hundred string `bson:"hundred,omitempty"`
	Over    string `bson:"over,omitempty"`
}

type goalDocument struct {
	ID               string        `bson:"_id"`
	CustomID         string        `bson:"custom_id,omitempty"`
	Type             string        `bson:"type"`
	Directorate      string        `bson:"directorate,omitempty"`
	Area             string        `bson:"area"`
	Objective        string        `bson:"objective,omitempty"`
	KeyResult        string        `bson:"key_result,omitempty"`
	KPIName          string        `bson:"kpi_name,omitempty"`
	Weight           float64       `bson:"weight"`
	Attainment       *float64      `bson:"attainment"`
	MonthlyResult    *float64      `bson:"monthly_result"`
	YearToDateResult *float64      `bson:"ytd_result"`
	Unit             string        `bson:"unit,omitempty"`
	ReferenceDate    *time.Time    `bson:"reference_date"`
	Status           string        `bson:"status"`
	Deadline         string        `bson:"deadline,omitempty"`
	Formula          string        `bson:"formula,omitempty"`
	Explanation      string        `bson:"explanation,omitempty"`
	Rungs            rungsDocument `bson:"rungs"`
	CreatedAt        time.Time     `bson:"created_at"`
	UpdatedAt        time.Time     `bson:"updated_at"`
}

func goalFromEntity(g *entity.GoalRecord) goalDocument {
	return goalDocument{
		ID:               g.ID.String(),
		CustomID:         g.CustomID,
		Type:             string(g.Type),
		Directorate:      g.Directorate,
		Area:             g.Area,
		Objective:        g.Objective,
		KeyResult:        g.KeyResult,
		KPIName:          g.KPIName,
		Weight:           g.Weight,
		Attainment:       g.Attainment,
		MonthlyResult:    g.MonthlyResult,
		YearToDateResult: g.YearToDateResult,
		Unit:             g.Unit,
		ReferenceDate:    g.ReferenceDate,
		Status:           string(g.Status),
		Deadline:         g.Deadline,
		Formula:          g.Formula,
		Explanation:      g.Explanation,
		Rungs: rungsDocument{
			Zero:    g.Rungs.Zero,
			Sixty:   g.Rungs.Sixty,
			Hundred: g.Rungs.Hundred,
			Over:    g.Rungs.Over,
		},
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (d goalDocument) toEntity() *entity.GoalRecord {
	var ref *time.Time
	if d.ReferenceDate != nil {
		utc := d.ReferenceDate.UTC()
		ref = &utc
	}
	return &entity.GoalRecord{
		ID:               parseID(d.ID),
		CustomID:         d.CustomID,
		Type:             entity.GoalType(d.Type),
		Directorate:      d.Directorate,
		Area:             d.Area,
		Objective:        d.Objective,
		KeyResult:        d.KeyResult,
		KPIName:          d.KPIName,
		Weight:           d.Weight,
		Attainment:       d.Attainment,
		MonthlyResult:    d.MonthlyResult,
		YearToDateResult: d.YearToDateResult,
		Unit:             d.Unit,
		ReferenceDate:    ref,
		Status:           entity.GoalStatus(d.Status),
		Deadline:         d.Deadline,
		Formula:          d.Formula,
		Explanation:      d.Explanation,
		Rungs: entity.Rungs{
			Zero:    d.Rungs.Zero,
			Sixty:   d.Rungs.Sixty,
			Hundred: d.Rungs.Hundred,
			Over:    d.Rungs.Over,
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type milestoneDocument struct {
	ID        string    `bson:"_id"`
	GoalID    string    `bson:"goal_id,omitempty"`
	CustomID  string    `bson:"custom_id,omitempty"`
	Project   string    `bson:"project,omitempty"`
	Step      string    `bson:"step"`
	Weight    float64   `bson:"weight"`
	Deadline  string    `bson:"deadline,omitempty"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func milestoneFromEntity(m *entity.MilestoneStep) milestoneDocument {
	doc := milestoneDocument{
		ID:        m.ID.String(),
		CustomID:  m.CustomID,
		Project:   m.Project,
		Step:      m.Step,
		Weight:    m.Weight,
		Deadline:  m.Deadline,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.GoalID != uuid.Nil {
		doc.GoalID = m.GoalID.String()
	}
	return doc
}

func (d milestoneDocument) toEntity() *entity.MilestoneStep {
	return &entity.MilestoneStep{
		ID:        parseID(d.ID),
		GoalID:    parseID(d.GoalID),
		CustomID:  d.CustomID,
		Project:   d.Project,
		Step:      d.Step,
		Weight:    d.Weight,
		Deadline:  d.Deadline,
		Status:    entity.MilestoneStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Login        string    `bson:"login"`
	Password     string    `bson:"password"`
	Role         string    `bson:"role"`
	DisplayLabel string    `bson:"display_label,omitempty"`
	Area         string    `bson:"area"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func userFromEntity(u *entity.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Login:        u.Login,
		Password:     u.Password,
		Role:         string(u.Role),
		DisplayLabel: u.DisplayLabel,
		Area:         u.Area,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:           parseID(d.ID),
		Login:        d.Login,
		Password:     d.Password,
		Role:         entity.Role(d.Role),
		DisplayLabel: d.DisplayLabel,
		Area:         d.Area,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// budgetDocument keeps the amount as a decimal string so cents survive.
type budgetDocument struct {
	Area      string    `bson:"_id"`
	Amount    string    `bson:"amount"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func budgetFromEntity(b *entity.AreaBudget) budgetDocument {
	return budgetDocument{
		Area:      b.Area,
		Amount:    b.Amount.StringFixed(2),
		UpdatedAt: b.UpdatedAt,
	}
}

func (d budgetDocument) amount() decimal.Decimal {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseID returns uuid.Nil for empty or malformed ids.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
