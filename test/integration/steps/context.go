//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/goal-tracker/backend/config"
	"github.com/goal-tracker/backend/internal/infra/db"
	"github.com/goal-tracker/backend/internal/infra/dependency"
	"github.com/goal-tracker/backend/internal/integration/cache"
	"github.com/goal-tracker/backend/internal/integration/persistence/model"
	"github.com/goal-tracker/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	testCachePrefix = "goal-tracker-test:"
)

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	redis       *redis.Client
	accessToken string
	saved       map[string]string
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("REDIS_PREFIX", testCachePrefix)
		_ = os.Setenv("REFRESH_SCORES_CRON", "")
		_ = os.Setenv("CLEANUP_LIMITER_CRON", "")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initializePort()
	})
}

func newTestContext() *testContext {
	initializePort()

	return &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"goal_records": &model.GoalModel{},
			"milestones":   &model.MilestoneModel{},
			"area_budgets": &model.BudgetModel{},
		}),
		redis: mock.NewRedis(),
	}
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.saved = make(map[string]string)

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
}

// startServer boots the API once, on the shared in-memory database and the
// miniredis score cache.
func (t *testContext) startServer() error {
	var startErr error

	serverInit.Do(func() {
		cfg := config.Load()

		repos := dependency.NewGormRepositories(db.Wrap(t.db.DbConn))
		scoreCache := cache.NewRedisScoreCache(t.redis, cfg.Redis.Prefix)

		injector, err := dependency.NewInjector(cfg, repos, &dependency.ScoreCache{
			Cache:  scoreCache,
			Health: scoreCache.Ping,
		})
		if err != nil {
			startErr = fmt.Errorf("failed to build injector: %w", err)
			return
		}

		engine := injector.Router.Setup(cfg.Server.Environment)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if startErr != nil {
		return startErr
	}

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not become healthy on port %d", testServerPort)
}
