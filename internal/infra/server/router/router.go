// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	goalController      *controller.GoalController
	milestoneController *controller.MilestoneController
	userController      *controller.UserController
	budgetController    *controller.BudgetController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.LoginLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	goalController *controller.GoalController,
	milestoneController *controller.MilestoneController,
	userController *controller.UserController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.LoginLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		goalController:      goalController,
		milestoneController: milestoneController,
		userController:      userController,
		budgetController:    budgetController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
	}

	// Everything below requires a valid access token
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.DELETE("", middleware.RequireRole(entity.RoleAdmin), r.goalController.DeleteAll)
		goals.GET("/:id", r.goalController.Get)
		goals.PUT("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.GET("/:id/milestones", r.milestoneController.ListByGoal)
	}

	milestones := protected.Group("/milestones")
	{
		milestones.POST("", r.milestoneController.Save)
		milestones.PATCH("/:id/status", r.milestoneController.Toggle)
		milestones.DELETE("/:id", r.milestoneController.Delete)
	}

	admin := protected.Group("")
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/users", r.userController.List)
		admin.POST("/users", r.userController.Create)
		admin.PUT("/users/:id", r.userController.Update)
		admin.DELETE("/users/:id", r.userController.Delete)
		admin.GET("/areas", r.userController.ListAreas)
	}

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.PUT("/:area", r.budgetController.Set)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/company", r.dashboardController.Company)
		dashboard.GET("/area", r.dashboardController.Area)
		dashboard.GET("/areas", r.dashboardController.Areas)
		dashboard.POST("/simulate", r.dashboardController.Simulate)
		dashboard.GET("/tax", r.dashboardController.Tax)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
