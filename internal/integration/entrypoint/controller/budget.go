package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/budget"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles area budget endpoints.
type BudgetController struct {
	listUseCase *budget.ListBudgetsUseCase
	setUseCase  *budget.SetBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(listUseCase *budget.ListBudgetsUseCase, setUseCase *budget.SetBudgetUseCase) *BudgetController {
	return &BudgetController{
		listUseCase: listUseCase,
		setUseCase:  setUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{Actor: actor})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Set handles PUT /budgets/:area requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidGrossAmount))
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), budget.SetBudgetInput{
		Actor:  actor,
		Area:   ctx.Param("area"),
		Amount: req.Amount.String(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}
