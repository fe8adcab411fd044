package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/usecase/goal"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase      *goal.ListGoalsUseCase
	getUseCase       *goal.GetGoalUseCase
	saveUseCase      *goal.SaveGoalUseCase
	deleteUseCase    *goal.DeleteGoalUseCase
	deleteAllUseCase *goal.DeleteAllGoalsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	saveUseCase *goal.SaveGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	deleteAllUseCase *goal.DeleteAllGoalsUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		saveUseCase:      saveUseCase,
		deleteUseCase:    deleteUseCase,
		deleteAllUseCase: deleteAllUseCase,
	}
}

// List handles GET /goals requests.
// Supports the optional query parameter type.
func (c *GoalController) List(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		Actor: actor,
		Type:  ctx.Query("type"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	goalID, ok := pathID(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		Actor:  actor,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	c.save(ctx, nil)
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := pathID(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}
	c.save(ctx, &goalID)
}

func (c *GoalController) save(ctx *gin.Context, goalID *uuid.UUID) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SaveGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), goal.SaveGoalInput{
		Actor:            actor,
		GoalID:           goalID,
		CustomID:         req.CustomID,
		Type:             req.Type,
		Directorate:      req.Directorate,
		Area:             req.Area,
		Objective:        req.Objective,
		KeyResult:        req.KeyResult,
		KPIName:          req.KPIName,
		Weight:           req.Weight.String(),
		Attainment:       req.Attainment.Ptr(),
		MonthlyResult:    req.MonthlyResult.Ptr(),
		YearToDateResult: req.YearToDateResult.Ptr(),
		Unit:             req.Unit,
		ReferenceDate:    req.ReferenceDate,
		Deadline:         req.Deadline,
		Formula:          req.Formula,
		Explanation:      req.Explanation,
		Rungs:            req.Rungs.ToRungs(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	goalID, ok := pathID(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		Actor:  actor,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteAll handles DELETE /goals requests. Administrators only.
func (c *GoalController) DeleteAll(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.deleteAllUseCase.Execute(ctx.Request.Context(), goal.DeleteAllGoalsInput{
		Actor: actor,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteAllGoalsResponse{Deleted: output.Deleted})
}
