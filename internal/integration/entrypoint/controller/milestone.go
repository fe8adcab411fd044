package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/usecase/milestone"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// MilestoneController handles milestone step endpoints.
type MilestoneController struct {
	listUseCase   *milestone.ListMilestonesUseCase
	saveUseCase   *milestone.SaveMilestoneUseCase
	toggleUseCase *milestone.ToggleMilestoneUseCase
	deleteUseCase *milestone.DeleteMilestoneUseCase
}

// NewMilestoneController creates a new milestone controller instance.
func NewMilestoneController(
	listUseCase *milestone.ListMilestonesUseCase,
	saveUseCase *milestone.SaveMilestoneUseCase,
	toggleUseCase *milestone.ToggleMilestoneUseCase,
	deleteUseCase *milestone.DeleteMilestoneUseCase,
) *MilestoneController {
	return &MilestoneController{
		listUseCase:   listUseCase,
		saveUseCase:   saveUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// ListByGoal handles GET /goals/:id/milestones requests.
func (c *MilestoneController) ListByGoal(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	goalID, ok := pathID(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), milestone.ListMilestonesInput{
		Actor:  actor,
		GoalID: goalID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMilestoneListResponse(output.Milestones, output.Progress))
}

// Save handles POST /milestones requests. A body carrying an id updates
// that step; otherwise a new one is created.
func (c *MilestoneController) Save(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SaveMilestoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidMilestoneBody))
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), milestone.SaveMilestoneInput{
		Actor:       actor,
		MilestoneID: optionalUUID(req.ID),
		GoalID:      optionalUUID(req.GoalID),
		CustomID:    req.CustomID,
		Project:     req.Project,
		Step:        req.Step,
		Weight:      req.Weight.String(),
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToMilestoneResponse(output.Milestone))
}

// Toggle handles PATCH /milestones/:id/status requests.
func (c *MilestoneController) Toggle(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	milestoneID, ok := pathID(ctx, string(domainerror.ErrCodeMilestoneNotFound))
	if !ok {
		return
	}

	var req dto.ToggleMilestoneRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidMilestoneBody))
			return
		}
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), milestone.ToggleMilestoneInput{
		Actor:       actor,
		MilestoneID: milestoneID,
		Status:      req.Status,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToToggleMilestoneResponse(output.Milestone, output.Goals))
}

// Delete handles DELETE /milestones/:id requests.
func (c *MilestoneController) Delete(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	milestoneID, ok := pathID(ctx, string(domainerror.ErrCodeMilestoneNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), milestone.DeleteMilestoneInput{
		Actor:       actor,
		MilestoneID: milestoneID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// optionalUUID parses an already validated uuid string, nil when empty.
func optionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
