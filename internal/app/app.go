package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/cache"
	"github.com/plasmahub/plasma-builder-backend/internal/db"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/server"
	"github.com/plasmahub/plasma-builder-backend/internal/transformer"
)

const serviceName = "plasma-builder-backend"

// App owns the backend's wired object graph and its HTTP server.
type App struct {
	log    *logger.Logger
	cfg    Config
	gormDB *gorm.DB
	redis  *cache.RedisCache
	srv    *http.Server
}

func New(ctx context.Context, log *logger.Logger) (*App, error) {
	cfg, err := LoadConfig(log)
	if err != nil {
		return nil, err
	}

	gormDB, err := openDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	var redisCache *cache.RedisCache
	var redisLayer cache.RedisLayer
	if os.Getenv("REDIS_ADDR") != "" {
		redisCache, err = cache.NewRedisCache(log)
		if err != nil {
			log.Warn("Redis unavailable, export cache runs local-only", "error", err)
		} else {
			redisLayer = redisCache
		}
	}
	exportCache := cache.NewExportCache(log, cfg.CacheSize, cfg.CacheTTL, redisLayer)

	trans := transformer.NewFormatTransformer(log)
	wiredRepos := wireRepos(gormDB, log)
	svcs := wireServices(gormDB, log, cfg, trans, exportCache, wiredRepos)
	hnds := wireHandlers(log, svcs)

	router := server.NewRouter(server.RouterConfig{
		ServiceName:         serviceName,
		AllowOrigins:        cfg.AllowOrigins,
		HealthHandler:       hnds.Health,
		DesignSystemHandler: hnds.DesignSystems,
		ComponentHandler:    hnds.Components,
	})

	return &App{
		log:    log,
		cfg:    cfg,
		gormDB: gormDB,
		redis:  redisCache,
		srv: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
	}, nil
}

// Run serves until the context is cancelled or a termination signal arrives,
// then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Server listening", "addr", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.srv.Shutdown(shutdownCtx)
}

func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("Closing redis client failed", "error", err)
		}
	}
	if sqlDB, err := a.gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Warn("Closing database failed", "error", err)
		}
	}
}

func openDatabase(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		svc, err := db.NewSQLiteService(log)
		if err != nil {
			return nil, err
		}
		if err := svc.AutoMigrateAll(); err != nil {
			return nil, err
		}
		return svc.DB(), nil
	case "postgres":
		svc, err := db.NewPostgresService(log)
		if err != nil {
			return nil, err
		}
		if err := svc.AutoMigrateAll(); err != nil {
			return nil, err
		}
		return svc.DB(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
