package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the score dashboards and the bonus simulator.
type DashboardController struct {
	companyScoreUseCase *dashboard.GetCompanyScoreUseCase
	areaScoreUseCase    *dashboard.GetAreaScoreUseCase
	areasSummaryUseCase *dashboard.GetAreasSummaryUseCase
	simulateUseCase     *dashboard.SimulateBonusUseCase
	taxUseCase          *dashboard.GetTaxUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	companyScoreUseCase *dashboard.GetCompanyScoreUseCase,
	areaScoreUseCase *dashboard.GetAreaScoreUseCase,
	areasSummaryUseCase *dashboard.GetAreasSummaryUseCase,
	simulateUseCase *dashboard.SimulateBonusUseCase,
	taxUseCase *dashboard.GetTaxUseCase,
) *DashboardController {
	return &DashboardController{
		companyScoreUseCase: companyScoreUseCase,
		areaScoreUseCase:    areaScoreUseCase,
		areasSummaryUseCase: areasSummaryUseCase,
		simulateUseCase:     simulateUseCase,
		taxUseCase:          taxUseCase,
	}
}

// Company handles GET /dashboard/company requests.
func (c *DashboardController) Company(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.companyScoreUseCase.Execute(ctx.Request.Context(), dashboard.GetCompanyScoreInput{Actor: actor})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyScoreResponse(output))
}

// Area handles GET /dashboard/area requests.
// AREA users always see their own area; others pick one with ?area=.
func (c *DashboardController) Area(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.areaScoreUseCase.Execute(ctx.Request.Context(), dashboard.GetAreaScoreInput{
		Actor: actor,
		Area:  ctx.Query("area"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAreaScoreResponse(output))
}

// Areas handles GET /dashboard/areas requests.
func (c *DashboardController) Areas(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.areasSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetAreasSummaryInput{Actor: actor})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAreasSummaryResponse(output))
}

// Simulate handles POST /dashboard/simulate requests.
func (c *DashboardController) Simulate(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SimulateBonusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidSalary))
		return
	}

	input := req.ToSimulateBonusInput()
	input.Actor = actor

	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulateBonusResponse(output))
}

// Tax handles GET /dashboard/tax requests.
// Supports query parameter gross, defaulting to zero.
func (c *DashboardController) Tax(ctx *gin.Context) {
	output, err := c.taxUseCase.Execute(ctx.Request.Context(), dashboard.GetTaxInput{
		Gross: ctx.DefaultQuery("gross", "0"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxResponse(output))
}
