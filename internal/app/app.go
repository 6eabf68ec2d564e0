// Package app wires configuration into the stores, clients and services
// shared by the server and the operator CLI.
package app

import (
	"context"
	"errors"
	"log/slog"

	"portfolio-cms/internal/adapter/cache"
	httpadapter "portfolio-cms/internal/adapter/http"
	"portfolio-cms/internal/adapter/repository"
	"portfolio-cms/internal/config"
	"portfolio-cms/internal/infrastructure/migration"
	"portfolio-cms/internal/usecase"
	"portfolio-cms/pkg/github"
	infra "portfolio-cms/pkg/infrastructure"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ErrNoDatabase is returned by operations that need Postgres when none is configured.
var ErrNoDatabase = errors.New("DATABASE_URL is not set")

type App struct {
	Config *config.Config
	Logger *slog.Logger

	Pool   *pgxpool.Pool
	Store  *repository.Store
	Redis  *redis.Client
	GitHub *github.Client

	Sync   *usecase.SyncService
	Export *usecase.ExportService
	Readme *usecase.ReadmeService
	Import *usecase.ImportService
}

// New connects what is configured. Postgres and Redis are optional: a
// missing or unreachable one is logged and left nil.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{Config: cfg, Logger: logger}

	if pool, err := infra.NewPool(ctx, cfg.DatabaseURL); errors.Is(err, infra.ErrNoDatabase) {
		logger.Info("running without a database")
	} else if err != nil {
		logger.Warn("database not available", "error", err)
	} else {
		a.Pool = pool
		a.Store = repository.NewStore(pool)
	}

	var readmeCache usecase.ReadmeCache
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis not available, readme cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			a.Redis = client
			readmeCache = cache.NewReadmeRedisCache(client)
		}
	}

	a.GitHub = github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Timeout, nil).WithLogger(logger)
	a.Readme = usecase.NewReadmeService(a.GitHub, readmeCache, cfg.GitHub.Token, cfg.GitHub.ReadmeTTL, logger)

	renderer := infra.NewChromedpRenderer(cfg.Resume.ChromePath)
	var profiles usecase.ProfileLoader
	if a.Store != nil {
		profiles = repository.NewProfileAggregator(a.Store)
		a.Sync = usecase.NewSyncService(a.Store.Projects, a.GitHub, a.Store.SyncRuns, logger)
		a.Import = usecase.NewImportService(usecase.ImportTargets{
			Personal:       a.Store.Personal,
			Experience:     a.Store.Experience,
			Education:      a.Store.Education,
			Certifications: a.Store.Certifications,
			Skills:         a.Store.Skills,
			Projects:       a.Store.Projects,
		}, logger)
	}
	a.Export = usecase.NewExportService(profiles, renderer, cfg.RoleVariants(), logger)
	return a
}

// Migrate runs the schema migrations.
func (a *App) Migrate(ctx context.Context) error {
	if a.Pool == nil {
		return ErrNoDatabase
	}
	return migration.RunMigrations(ctx, a.Pool)
}

// HTTPDeps exposes the app to the API handler.
func (a *App) HTTPDeps() httpadapter.Deps {
	d := httpadapter.Deps{
		Export:     a.Export,
		Readme:     a.Readme,
		Seed:       a.Config.Seed,
		GitHub:     a.Config.GitHub,
		AdminToken: a.Config.AdminToken,
		Logger:     a.Logger,
	}
	if a.Store != nil {
		s := a.Store
		d.Stores = &httpadapter.Stores{
			Personal:       s.Personal,
			Experience:     s.Experience,
			Education:      s.Education,
			Projects:       s.Projects,
			Certifications: s.Certifications,
			Roadmap:        s.Roadmap,
			Skills:         s.Skills,
			About:          s.About,
			Testimonials:   s.Testimonials,
			Technologies:   s.Technologies,
			SyncRuns:       s.SyncRuns,
		}
		d.Sync = a.Sync
		d.Importer = a.Import
	}
	return d
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.Pool != nil {
		a.Pool.Close()
	}
}
