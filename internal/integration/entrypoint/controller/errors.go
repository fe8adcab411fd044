package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the HTTP response for a use case error. Coded domain
// errors keep their code and message; anything else is a 500.
func handleError(ctx *gin.Context, err error) {
	var (
		authErr      *domainerror.AuthError
		goalErr      *domainerror.GoalError
		userErr      *domainerror.UserError
		milestoneErr *domainerror.MilestoneError
		dashboardErr *domainerror.DashboardError
	)

	switch {
	case errors.As(err, &authErr):
		respond(ctx, getStatusCodeForAuthError(authErr.Code), authErr.Message, string(authErr.Code))
	case errors.As(err, &goalErr):
		respond(ctx, getStatusCodeForGoalError(goalErr.Code), goalErr.Message, string(goalErr.Code))
	case errors.As(err, &userErr):
		respond(ctx, getStatusCodeForUserError(userErr.Code), userErr.Message, string(userErr.Code))
	case errors.As(err, &milestoneErr):
		respond(ctx, getStatusCodeForMilestoneError(milestoneErr.Code), milestoneErr.Message, string(milestoneErr.Code))
	case errors.As(err, &dashboardErr):
		respond(ctx, getStatusCodeForDashboardError(dashboardErr.Code), dashboardErr.Message, string(dashboardErr.Code))
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respond(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// badRequest answers a request whose body or parameters could not be bound.
func badRequest(ctx *gin.Context, message, code string) {
	respond(ctx, http.StatusBadRequest, message, code)
}

// actorOrAbort returns the authenticated user, answering 401 when the
// request carries none.
func actorOrAbort(ctx *gin.Context) (*entity.User, bool) {
	user, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respond(ctx, http.StatusUnauthorized, "User not authenticated", string(domainerror.ErrCodeMissingToken))
		return nil, false
	}
	return user, true
}

// pathID parses the :id route parameter, answering 400 when it is not a uuid.
func pathID(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid id format", code)
		return uuid.Nil, false
	}
	return id, true
}

func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess, domainerror.ErrCodeGoalAdminOnly:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalMissingArea,
		domainerror.ErrCodeGoalMissingIdentity,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeInvalidReferenceDate,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeLoginExists:
		return http.StatusConflict
	case domainerror.ErrCodeUserAdminOnly:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidRole,
		domainerror.ErrCodeAreaRequired,
		domainerror.ErrCodePasswordRequired,
		domainerror.ErrCodeMissingUserFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForMilestoneError(code domainerror.MilestoneErrorCode) int {
	switch code {
	case domainerror.ErrCodeMilestoneNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMilestoneForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeMilestoneStepRequired,
		domainerror.ErrCodeMilestoneUnlinked,
		domainerror.ErrCodeInvalidMilestoneStatus,
		domainerror.ErrCodeMilestoneGoalNotProject,
		domainerror.ErrCodeInvalidMilestoneBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeDashboardForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeAreaNotSpecified,
		domainerror.ErrCodeInvalidSalary,
		domainerror.ErrCodeInvalidScore,
		domainerror.ErrCodeUnknownLevel,
		domainerror.ErrCodeInvalidHireDate,
		domainerror.ErrCodeInvalidGrossAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
