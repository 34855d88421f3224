package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/handler"
	"github.com/ticklist/ticklist/internal/middleware"
	"github.com/ticklist/ticklist/internal/pkg/database"
	"github.com/ticklist/ticklist/internal/repository/memory"
	pgrepo "github.com/ticklist/ticklist/internal/repository/postgres"
	"github.com/ticklist/ticklist/internal/service"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Database connections (nil when the memory driver is selected
	// and redis is not needed)
	Postgres *database.PostgresDB
	Redis    *database.RedisDB

	// Repositories
	TodoRepo service.TodoRepository

	// Services
	TodoService *service.TodoService

	// Handlers
	HealthHandler *handler.HealthHandler
	TodosHandler  *handler.TodosHandler

	// Middleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// initDependencies initializes all dependencies
func initDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	ctx := context.Background()

	// Initialize the configured storage backend
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pgDB, err := database.NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
		}
		deps.Postgres = pgDB

		if err := pgrepo.EnsureSchema(ctx, pgDB); err != nil {
			pgDB.Close()
			return nil, err
		}
		deps.TodoRepo = pgrepo.NewTodoRepository(pgDB)

	case config.DriverMemory:
		deps.TodoRepo = memory.NewTodoRepository()

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	// Initialize Redis only when the rate limiter needs it
	if cfg.RateLimit.Enabled {
		redisDB, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		deps.Redis = redisDB
		deps.RateLimitMiddleware = middleware.NewRateLimitMiddleware(
			redisDB.Client,
			middleware.RateLimitConfig{
				Max:          cfg.RateLimit.Max,
				Window:       cfg.RateLimit.Window,
				KeyGenerator: middleware.DefaultRateLimitConfig().KeyGenerator,
				LimitReached: middleware.DefaultRateLimitConfig().LimitReached,
			},
		)
	}

	// Initialize services
	deps.TodoService = service.NewTodoService(deps.TodoRepo)

	// Initialize handlers
	deps.HealthHandler = handler.NewHealthHandler(
		poolOrNil(deps.Postgres),
		redisOrNil(deps.Redis),
		appVersion,
	)
	deps.TodosHandler = handler.NewTodosHandler(
		deps.TodoService,
		logger,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() {
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
}

func poolOrNil(db *database.PostgresDB) *pgxpool.Pool {
	if db == nil {
		return nil
	}
	return db.Pool
}

func redisOrNil(db *database.RedisDB) *redis.Client {
	if db == nil {
		return nil
	}
	return db.Client
}
