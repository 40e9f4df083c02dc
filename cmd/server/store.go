package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cory-johannsen/charhp/internal/api"
	"github.com/cory-johannsen/charhp/internal/config"
	"github.com/cory-johannsen/charhp/internal/game/health"
	"github.com/cory-johannsen/charhp/internal/storage/postgres"
	"github.com/cory-johannsen/charhp/internal/storage/redis"
	"github.com/cory-johannsen/charhp/internal/storage/sqlite"
)

const pingTimeout = 2 * time.Second

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type storeBackend struct {
	store  health.Store
	pinger api.Pinger
	close  func(ctx context.Context) error
}

// openStore connects the backend named by cfg.Storage.Backend.
func openStore(ctx context.Context, cfg config.Config) (storeBackend, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return storeBackend{store: health.NewMemoryStore()}, nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return storeBackend{}, err
		}
		if err := pool.RequireSchema(ctx); err != nil {
			pool.Close()
			return storeBackend{}, err
		}
		return storeBackend{
			store: postgres.NewHealthRepository(pool.DB()),
			pinger: pingFunc(func(ctx context.Context) error {
				return pool.Health(ctx, pingTimeout)
			}),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case config.BackendSQLite:
		repo, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return storeBackend{}, err
		}
		return storeBackend{
			store:  repo,
			pinger: repo,
			close:  func(context.Context) error { return repo.Close() },
		}, nil
	case config.BackendRedis:
		repo, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return storeBackend{}, err
		}
		return storeBackend{
			store:  repo,
			pinger: repo,
			close:  func(context.Context) error { return repo.Close() },
		}, nil
	default:
		return storeBackend{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
