// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goal-tracker/backend/config"
	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/auth"
	"github.com/goal-tracker/backend/internal/application/usecase/budget"
	"github.com/goal-tracker/backend/internal/application/usecase/dashboard"
	"github.com/goal-tracker/backend/internal/application/usecase/goal"
	"github.com/goal-tracker/backend/internal/application/usecase/milestone"
	"github.com/goal-tracker/backend/internal/application/usecase/user"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/infra/scheduler"
	"github.com/goal-tracker/backend/internal/infra/server/router"
	"github.com/goal-tracker/backend/internal/integration/adapters"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/middleware"
)

// schedulerJobTimeout bounds a single background job run.
const schedulerJobTimeout = time.Minute

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	Router    *router.Router
	Scheduler *scheduler.Scheduler
	Policy    valueobject.BonusPolicy
}

// NewInjector wires every use case, controller and background job on the
// given store and optional score cache.
func NewInjector(cfg *config.Config, repos *Repositories, scoreCache *ScoreCache) (*Injector, error) {
	policy, err := loadPolicy(cfg.Bonus.PolicyFile)
	if err != nil {
		return nil, err
	}

	var cache adapter.ScoreCache
	if scoreCache != nil && scoreCache.Cache != nil {
		cache = scoreCache.Cache
	}
	ttl := cfg.Redis.CacheTTL

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(repos.Users, passwordService, tokenService, auth.BootstrapConfig{
		Enabled:  cfg.Bootstrap.Enabled,
		Login:    cfg.Bootstrap.Login,
		Password: cfg.Bootstrap.Password,
	})

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(repos.Goals)
	getGoalUseCase := goal.NewGetGoalUseCase(repos.Goals)
	saveGoalUseCase := goal.NewSaveGoalUseCase(repos.Goals, cache)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(repos.Goals, cache)
	deleteAllGoalsUseCase := goal.NewDeleteAllGoalsUseCase(repos.Goals, cache)

	// Create milestone use cases
	progressSyncer := milestone.NewProgressSyncer(repos.Goals, repos.Milestones, cache, milestone.NewGoalLocks())
	listMilestonesUseCase := milestone.NewListMilestonesUseCase(repos.Goals, repos.Milestones)
	saveMilestoneUseCase := milestone.NewSaveMilestoneUseCase(repos.Goals, repos.Milestones, progressSyncer)
	toggleMilestoneUseCase := milestone.NewToggleMilestoneUseCase(repos.Milestones, progressSyncer)
	deleteMilestoneUseCase := milestone.NewDeleteMilestoneUseCase(repos.Milestones, progressSyncer)

	// Create user use cases
	listUsersUseCase := user.NewListUsersUseCase(repos.Users)
	saveUserUseCase := user.NewSaveUserUseCase(repos.Users, passwordService)
	deleteUserUseCase := user.NewDeleteUserUseCase(repos.Users)
	listAreasUseCase := user.NewListAreasUseCase(repos.Goals, repos.Users)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(repos.Budgets)
	setBudgetUseCase := budget.NewSetBudgetUseCase(repos.Budgets, cache)

	// Create dashboard use cases
	companyScoreUseCase := dashboard.NewGetCompanyScoreUseCase(repos.Goals, cache, policy, ttl)
	areaScoreUseCase := dashboard.NewGetAreaScoreUseCase(repos.Goals, cache, ttl)
	areasSummaryUseCase := dashboard.NewGetAreasSummaryUseCase(repos.Goals, repos.Budgets, cache, ttl)
	simulateBonusUseCase := dashboard.NewSimulateBonusUseCase(companyScoreUseCase, areaScoreUseCase, policy)
	taxUseCase := dashboard.NewGetTaxUseCase()
	refreshScoresUseCase := dashboard.NewRefreshScoresUseCase(companyScoreUseCase, areasSummaryUseCase, cache)

	// Create controllers
	var cacheHealth controller.HealthChecker
	if scoreCache != nil && scoreCache.Health != nil {
		cacheHealth = scoreCache.Health
	}
	healthController := controller.NewHealthController(repos.Health, cacheHealth)
	authController := controller.NewAuthController(loginUseCase)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		saveGoalUseCase,
		deleteGoalUseCase,
		deleteAllGoalsUseCase,
	)
	milestoneController := controller.NewMilestoneController(
		listMilestonesUseCase,
		saveMilestoneUseCase,
		toggleMilestoneUseCase,
		deleteMilestoneUseCase,
	)
	userController := controller.NewUserController(
		listUsersUseCase,
		saveUserUseCase,
		deleteUserUseCase,
		listAreasUseCase,
	)
	budgetController := controller.NewBudgetController(listBudgetsUseCase, setBudgetUseCase)
	dashboardController := controller.NewDashboardController(
		companyScoreUseCase,
		areaScoreUseCase,
		areasSummaryUseCase,
		simulateBonusUseCase,
		taxUseCase,
	)

	// Create middleware
	// Login throttling is off for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.LoginLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewDisabledLoginLimiter()
	} else {
		loginRateLimiter = middleware.NewLoginLimiter(cfg.Server.LoginLimit, cfg.Server.LoginWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		goalController,
		milestoneController,
		userController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create background jobs
	jobs := scheduler.New(schedulerJobTimeout)
	if err := jobs.Register("refresh-scores", cfg.Scheduler.RefreshScoresSpec, func(ctx context.Context) error {
		output, err := refreshScoresUseCase.Execute(ctx)
		if err != nil {
			return err
		}
		slog.Info("Scores refreshed", "company_score", output.CompanyScore, "areas", output.Areas)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := jobs.Register("cleanup-login-limiter", cfg.Scheduler.CleanupLimiterSpec, func(context.Context) error {
		loginRateLimiter.Cleanup()
		return nil
	}); err != nil {
		return nil, err
	}

	return &Injector{
		Config:    cfg,
		Router:    r,
		Scheduler: jobs,
		Policy:    policy,
	}, nil
}

// loadPolicy reads the bonus policy file, or returns the built-in policy
// when none is configured.
func loadPolicy(path string) (valueobject.BonusPolicy, error) {
	if path == "" {
		return valueobject.DefaultBonusPolicy(), nil
	}

	policy, err := valueobject.LoadBonusPolicy(path)
	if err != nil {
		return valueobject.BonusPolicy{}, fmt.Errorf("failed to load bonus policy: %w", err)
	}
	slog.Info("Bonus policy loaded", "file", path, "reference_year", policy.ReferenceYear)
	return policy, nil
}
