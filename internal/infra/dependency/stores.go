package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goal-tracker/backend/config"
	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/infra/db"
	"github.com/goal-tracker/backend/internal/integration/cache"
	"github.com/goal-tracker/backend/internal/integration/docstore"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/persistence/model"
)

// Repositories groups the store implementations the use cases depend on.
type Repositories struct {
	Goals      adapter.GoalRepository
	Milestones adapter.MilestoneRepository
	Users      adapter.UserRepository
	Budgets    adapter.BudgetRepository

	// Health pings the backing store.
	Health func(ctx context.Context) bool
	// Close releases the store connection.
	Close func(ctx context.Context) error
}

// NewGormRepositories builds the relational repositories on db.
func NewGormRepositories(database *db.Database) *Repositories {
	gdb := database.DB()
	return &Repositories{
		Goals:      persistence.NewGoalRepository(gdb),
		Milestones: persistence.NewMilestoneRepository(gdb),
		Users:      persistence.NewUserRepository(gdb),
		Budgets:    persistence.NewBudgetRepository(gdb),
		Health:     database.HealthCheck,
		Close:      func(context.Context) error { return database.Close() },
	}
}

// NewMongoRepositories builds the document repositories on store.
func NewMongoRepositories(store *docstore.Store) *Repositories {
	mdb := store.Database()
	return &Repositories{
		Goals:      docstore.NewGoalRepository(mdb),
		Milestones: docstore.NewMilestoneRepository(mdb),
		Users:      docstore.NewUserRepository(mdb),
		Budgets:    docstore.NewBudgetRepository(mdb),
		Health:     store.Ping,
		Close:      store.Close,
	}
}

// OpenRepositories connects to the store selected by cfg.Store.Driver and
// prepares its schema.
func OpenRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		store, err := docstore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		slog.Info("Document store connected", "database", cfg.Mongo.Database)
		return NewMongoRepositories(store), nil

	case config.StoreDriverPostgres, "":
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(model.All()...); err != nil {
			_ = database.Close()
			return nil, err
		}
		slog.Info("Database migrations completed successfully")
		return NewGormRepositories(database), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// ScoreCache bundles the optional dashboard cache with its health probe.
type ScoreCache struct {
	Cache  adapter.ScoreCache
	Health func(ctx context.Context) bool
	Close  func() error
}

// OpenScoreCache connects to Redis. An empty URL or an unreachable server
// leaves the dashboards uncached.
func OpenScoreCache(ctx context.Context, cfg *config.RedisConfig) *ScoreCache {
	if cfg.URL == "" {
		slog.Info("Score cache disabled")
		return &ScoreCache{}
	}

	client, err := cache.NewRedisClient(ctx, cfg.URL)
	if err != nil {
		slog.Warn("Score cache unavailable, dashboards will be computed on every request", "error", err)
		return &ScoreCache{}
	}

	scoreCache := cache.NewRedisScoreCache(client, cfg.Prefix)
	return &ScoreCache{
		Cache:  scoreCache,
		Health: scoreCache.Ping,
		Close:  client.Close,
	}
}
