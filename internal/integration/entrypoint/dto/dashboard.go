package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goal-tracker/backend/internal/application/usecase/dashboard"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// CompanyScoreResponse represents the company dashboard.
type CompanyScoreResponse struct {
	Score int                   `json:"score"`
	Band  string                `json:"band"`
	Goals []LogicalGoalResponse `json:"goals"`
}

// GoalContributionResponse is a goal's share of its area score.
type GoalContributionResponse struct {
	Goal         LogicalGoalResponse `json:"goal"`
	Contribution float64             `json:"contribution"`
}

// AreaScoreResponse represents the area dashboard.
type AreaScoreResponse struct {
	Area        string                     `json:"area"`
	Score       int                        `json:"score"`
	Band        string                     `json:"band"`
	TotalWeight float64                    `json:"total_weight"`
	Goals       []GoalContributionResponse `json:"goals"`
}

// AreaSummaryResponse is one row of the portfolio view.
type AreaSummaryResponse struct {
	Area                    string  `json:"area"`
	Score                   int     `json:"score"`
	Status                  string  `json:"status"`
	GoalCount               int     `json:"goal_count"`
	Budget                  float64 `json:"budget"`
	ProjectedPayment        float64 `json:"projected_payment"`
	ProjectedPaymentDisplay string  `json:"projected_payment_display"`
}

// AreasSummaryResponse represents the all-areas portfolio view.
type AreasSummaryResponse struct {
	Areas                  []AreaSummaryResponse `json:"areas"`
	TotalProjection        float64               `json:"total_projection"`
	TotalProjectionDisplay string                `json:"total_projection_display"`
}

// SimulateBonusRequest represents the bonus simulator form. Absent scores
// are taken from the current dashboards.
type SimulateBonusRequest struct {
	Salary          FlexString `json:"salary" binding:"required"`
	Level           string     `json:"level"`
	Multiplier      *float64   `json:"multiplier"`
	IndividualScore *float64   `json:"individual_score"`
	CompanyScore    *float64   `json:"company_score"`
	AreaScore       *float64   `json:"area_score"`
	Area            string     `json:"area"`
	HireDate        string     `json:"hire_date"`
}

// SimulateBonusResponse represents the estimated bonus.
type SimulateBonusResponse struct {
	CompanyScore        float64 `json:"company_score"`
	AreaScore           float64 `json:"area_score"`
	IndividualScore     float64 `json:"individual_score"`
	Multiplier          float64 `json:"multiplier"`
	WeightedScore       float64 `json:"weighted_score"`
	TimeFactor          float64 `json:"time_factor"`
	DaysWorked          int     `json:"days_worked,omitempty"`
	Eligible            bool    `json:"eligible"`
	IneligibilityReason string  `json:"ineligibility_reason,omitempty"`
	Gross               float64 `json:"gross"`
	Tax                 float64 `json:"tax"`
	Net                 float64 `json:"net"`
	GrossDisplay        string  `json:"gross_display"`
	NetDisplay          string  `json:"net_display"`
}

// TaxBracketResponse describes a row of the withholding table. UpperBound is
// null for the top bracket.
type TaxBracketResponse struct {
	UpperBound *float64 `json:"upper_bound"`
	Rate       float64  `json:"rate"`
	Deduction  float64  `json:"deduction"`
}

// TaxResponse represents the withholding on a gross amount.
type TaxResponse struct {
	Gross float64              `json:"gross"`
	Tax   float64              `json:"tax"`
	Net   float64              `json:"net"`
	Table []TaxBracketResponse `json:"table"`
}

func formatMoney(d decimal.Decimal) string {
	return valueobject.FormatCurrency(d.InexactFloat64())
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// ToCompanyScoreResponse converts the company dashboard output.
func ToCompanyScoreResponse(output *dashboard.GetCompanyScoreOutput) CompanyScoreResponse {
	return CompanyScoreResponse{
		Score: output.Score,
		Band:  string(valueobject.BandFor(float64(output.Score))),
		Goals: ToGoalListResponse(output.Goals).Goals,
	}
}

// ToAreaScoreResponse converts the area dashboard output.
func ToAreaScoreResponse(output *dashboard.GetAreaScoreOutput) AreaScoreResponse {
	b := output.Breakdown
	response := AreaScoreResponse{
		Area:        b.Area,
		Score:       b.Score,
		Band:        string(valueobject.BandFor(float64(b.Score))),
		TotalWeight: b.TotalWeight,
		Goals:       make([]GoalContributionResponse, 0, len(b.Goals)),
	}
	for _, g := range b.Goals {
		response.Goals = append(response.Goals, GoalContributionResponse{
			Goal:         ToLogicalGoalResponse(g.Goal),
			Contribution: g.Contribution,
		})
	}
	return response
}

// ToAreasSummaryResponse converts the portfolio view output.
func ToAreasSummaryResponse(output *dashboard.GetAreasSummaryOutput) AreasSummaryResponse {
	response := AreasSummaryResponse{
		Areas:                  make([]AreaSummaryResponse, 0, len(output.Areas)),
		TotalProjection:        toFloat(output.TotalProjection),
		TotalProjectionDisplay: formatMoney(output.TotalProjection),
	}
	for _, a := range output.Areas {
		response.Areas = append(response.Areas, AreaSummaryResponse{
			Area:                    a.Area,
			Score:                   a.Score,
			Status:                  string(a.Status),
			GoalCount:               a.GoalCount,
			Budget:                  toFloat(a.Budget),
			ProjectedPayment:        toFloat(a.ProjectedPayment),
			ProjectedPaymentDisplay: formatMoney(a.ProjectedPayment),
		})
	}
	return response
}

// ToSimulateBonusInput converts the simulator form to the use case input.
func (r SimulateBonusRequest) ToSimulateBonusInput() dashboard.SimulateBonusInput {
	return dashboard.SimulateBonusInput{
		Salary:          r.Salary.String(),
		Level:           r.Level,
		Multiplier:      r.Multiplier,
		IndividualScore: r.IndividualScore,
		CompanyScore:    r.CompanyScore,
		AreaScore:       r.AreaScore,
		Area:            r.Area,
		HireDate:        r.HireDate,
	}
}

// ToSimulateBonusResponse converts the simulation output.
func ToSimulateBonusResponse(output *dashboard.SimulateBonusOutput) SimulateBonusResponse {
	r := output.Result
	return SimulateBonusResponse{
		CompanyScore:        output.CompanyScore,
		AreaScore:           output.AreaScore,
		IndividualScore:     output.IndividualScore,
		Multiplier:          output.Multiplier,
		WeightedScore:       toFloat(r.WeightedScore),
		TimeFactor:          toFloat(r.TimeFactor),
		DaysWorked:          r.DaysWorked,
		Eligible:            r.Eligible,
		IneligibilityReason: r.IneligibilityReason,
		Gross:               toFloat(r.Gross),
		Tax:                 toFloat(r.Tax),
		Net:                 toFloat(r.Net),
		GrossDisplay:        formatMoney(r.Gross),
		NetDisplay:          formatMoney(r.Net),
	}
}

// ToTaxResponse converts the tax lookup output.
func ToTaxResponse(output *dashboard.GetTaxOutput) TaxResponse {
	response := TaxResponse{
		Gross: toFloat(output.Breakdown.Gross),
		Tax:   toFloat(output.Breakdown.Tax),
		Net:   toFloat(output.Breakdown.Net),
		Table: make([]TaxBracketResponse, 0, len(output.Table)),
	}
	for _, b := range output.Table {
		row := TaxBracketResponse{Rate: toFloat(b.Rate), Deduction: toFloat(b.Deduction)}
		if b.UpperBound != nil {
			upper := toFloat(*b.UpperBound)
			row.UpperBound = &upper
		}
		response.Table = append(response.Table, row)
	}
	return response
}
