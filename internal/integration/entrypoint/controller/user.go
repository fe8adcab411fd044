package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/usecase/user"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// UserController handles user management endpoints.
type UserController struct {
	listUseCase      *user.ListUsersUseCase
	saveUseCase      *user.SaveUserUseCase
	deleteUseCase    *user.DeleteUserUseCase
	listAreasUseCase *user.ListAreasUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	listUseCase *user.ListUsersUseCase,
	saveUseCase *user.SaveUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	listAreasUseCase *user.ListAreasUseCase,
) *UserController {
	return &UserController{
		listUseCase:      listUseCase,
		saveUseCase:      saveUseCase,
		deleteUseCase:    deleteUseCase,
		listAreasUseCase: listAreasUseCase,
	}
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{Actor: actor})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	c.save(ctx, nil)
}

// Update handles PUT /users/:id requests. An empty password keeps the
// current one.
func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := pathID(ctx, string(domainerror.ErrCodeUserNotFound))
	if !ok {
		return
	}
	c.save(ctx, &userID)
}

func (c *UserController) save(ctx *gin.Context, userID *uuid.UUID) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SaveUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingUserFields))
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), user.SaveUserInput{
		Actor:        actor,
		UserID:       userID,
		Login:        req.Login,
		Password:     req.Password,
		Role:         req.Role,
		DisplayLabel: req.DisplayLabel,
		Area:         req.Area,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToUserResponse(output.User))
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	userID, ok := pathID(ctx, string(domainerror.ErrCodeUserNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		UserID: userID,
		Actor:  actor,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListAreas handles GET /areas requests.
func (c *UserController) ListAreas(ctx *gin.Context) {
	actor, ok := actorOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listAreasUseCase.Execute(ctx.Request.Context(), user.ListAreasInput{Actor: actor})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AreaListResponse{Areas: output.Areas})
}
