package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing service answers.
type HealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	storeChecker HealthChecker
	cacheChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil
// checker reports its dependency as disabled.
func NewHealthController(storeChecker, cacheChecker HealthChecker) *HealthController {
	return &HealthController{
		storeChecker: storeChecker,
		cacheChecker: cacheChecker,
	}
}

// Check handles GET /health requests.
// The API is degraded, not down, when only the score cache is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Store:     probe(ctx, h.storeChecker),
		Cache:     probe(ctx, h.cacheChecker),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	switch {
	case response.Store == "disconnected":
		response.Status = "unavailable"
		status = http.StatusServiceUnavailable
	case response.Cache == "disconnected":
		response.Status = "degraded"
	}

	c.JSON(status, response)
}

func probe(ctx context.Context, checker HealthChecker) string {
	if checker == nil {
		return "disabled"
	}
	if checker(ctx) {
		return "connected"
	}
	return "disconnected"
}
