package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/evaluations"
	"placement-backend/internal/roadmaps"
	"placement-backend/internal/services/health"
	"placement-backend/internal/shared/cache"
	"placement-backend/internal/shared/config"
	"placement-backend/internal/shared/server"
	"placement-backend/internal/shared/storage/db"
	"placement-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Cache              *cache.Redis
	Health             *health.Service
	EvaluationsRepo    evaluations.Repo
	EvaluationsService *evaluations.Service
	EvaluationHandler  *evaluations.Handler
	RoadmapHandler     *roadmaps.Handler
}

// Build prepares dependencies and wires routes. Dev-like environments fall
// back to in-memory storage and no cache when Postgres or Redis is unavailable.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisCache, err := buildCache(ctx, cfg)
	if err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Cache:  redisCache,
		Health: health.NewService(),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		EvaluationHandler: app.EvaluationHandler,
		RoadmapHandler:    app.RoadmapHandler,
		Health:            app.Health,
	})
	return app, nil
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.database_disabled", map[string]any{"reason": "DATABASE_URL empty", "repo": "memory"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_unavailable", map[string]any{"err": err, "repo": "memory"})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildCache(ctx context.Context, cfg config.Config) (*cache.Redis, error) {
	redisCache, err := cache.NewRedis(cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.RedisTTL,
	})
	if err != nil || redisCache == nil {
		return nil, err
	}
	if err := redisCache.Ping(ctx); err != nil {
		_ = redisCache.Close()
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.cache_unavailable", map[string]any{"err": err})
			return nil, nil
		}
		return nil, err
	}
	return redisCache, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.EvaluationsRepo = &evaluations.PGRepo{DB: app.DB}
		app.Health.Register("database", app.DB.PingContext)
	} else {
		app.EvaluationsRepo = evaluations.NewMemoryRepo()
	}

	var evalCache evaluations.Cache
	if app.Cache != nil {
		evalCache = app.Cache
		app.Health.Register("redis", app.Cache.Ping)
	}

	app.EvaluationsService = evaluations.NewService(app.EvaluationsRepo, evalCache, nil)
	app.EvaluationHandler = evaluations.NewHandler(app.EvaluationsService)
	app.RoadmapHandler = roadmaps.NewHandler(nil)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
