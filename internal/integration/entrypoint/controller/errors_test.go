package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "goal not found",
			err:            domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "GOL-010001",
		},
		{
			name:           "wrapped goal error keeps its code",
			err:            fmt.Errorf("save: %w", domainerror.NewGoalError(domainerror.ErrCodeUnauthorizedGoalAccess, "nope", nil)),
			expectedStatus: http.StatusForbidden,
			expectedCode:   "GOL-010006",
		},
		{
			name:           "login conflict",
			err:            domainerror.NewUserError(domainerror.ErrCodeLoginExists, "login already exists", domainerror.ErrLoginAlreadyExists),
			expectedStatus: http.StatusConflict,
			expectedCode:   "USR-010002",
		},
		{
			name:           "invalid credentials",
			err:            domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid login or password", domainerror.ErrInvalidCredentials),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH-020001",
		},
		{
			name:           "milestone status",
			err:            domainerror.NewMilestoneError(domainerror.ErrCodeInvalidMilestoneStatus, "bad status", domainerror.ErrInvalidMilestoneStatus),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MIL-010004",
		},
		{
			name:           "milestone on non project goal",
			err:            domainerror.NewMilestoneError(domainerror.ErrCodeMilestoneGoalNotProject, "not a project goal", domainerror.ErrMilestoneGoalNotProject),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MIL-010005",
		},
		{
			name:           "dashboard forbidden",
			err:            domainerror.NewDashboardError(domainerror.ErrCodeDashboardForbidden, "forbidden", domainerror.ErrForbidden),
			expectedStatus: http.StatusForbidden,
			expectedCode:   "DSH-020001",
		},
		{
			name:           "unknown level",
			err:            domainerror.NewDashboardError(domainerror.ErrCodeUnknownLevel, "unknown level", domainerror.ErrUnknownLevel),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "DSH-010004",
		},
		{
			name:           "internal error hides details",
			err:            errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			var body dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Code != tt.expectedCode {
				t.Errorf("expected code %q, got %q", tt.expectedCode, body.Code)
			}
			if tt.expectedStatus == http.StatusInternalServerError && body.Error != "An internal error occurred" {
				t.Errorf("expected generic message, got %q", body.Error)
			}
		})
	}
}

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := func(ctx context.Context) bool { return true }
	down := func(ctx context.Context) bool { return false }

	tests := []struct {
		name           string
		store, cache   HealthChecker
		expectedStatus int
		expected       HealthResponse
	}{
		{name: "all up", store: up, cache: up, expectedStatus: http.StatusOK, expected: HealthResponse{Status: "ok", Store: "connected", Cache: "connected"}},
		{name: "cache disabled", store: up, expectedStatus: http.StatusOK, expected: HealthResponse{Status: "ok", Store: "connected", Cache: "disabled"}},
		{name: "cache down", store: up, cache: down, expectedStatus: http.StatusOK, expected: HealthResponse{Status: "degraded", Store: "connected", Cache: "disconnected"}},
		{name: "store down", store: down, cache: up, expectedStatus: http.StatusServiceUnavailable, expected: HealthResponse{Status: "unavailable", Store: "disconnected", Cache: "connected"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			NewHealthController(tt.store, tt.cache).Check(ctx)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Status != tt.expected.Status || body.Store != tt.expected.Store || body.Cache != tt.expected.Cache {
				t.Errorf("expected %+v, got %+v", tt.expected, body)
			}
		})
	}
}
