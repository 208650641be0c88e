package main

import (
	"context"
	"fmt"

	"raffle-manager-backend/internal/common/config"
	"raffle-manager-backend/internal/common/logger"
	"raffle-manager-backend/internal/features/raffle/repository"
	"raffle-manager-backend/internal/features/raffle/repository/file"
	"raffle-manager-backend/internal/features/raffle/repository/memory"
	mongostorage "raffle-manager-backend/internal/features/raffle/repository/mongo"
	redisstorage "raffle-manager-backend/internal/features/raffle/repository/redis"
	"raffle-manager-backend/internal/features/raffle/repository/sqlstore"
	mongoplatform "raffle-manager-backend/internal/platform/mongo"
	"raffle-manager-backend/internal/platform/postgres"
	redisplatform "raffle-manager-backend/internal/platform/redis"
	"raffle-manager-backend/internal/platform/sqlite"
)

type healthCheck func(ctx context.Context) error

// backend is the storage selected by STORAGE_DRIVER plus whatever has to be
// closed on shutdown.
type backend struct {
	storage repository.Storage
	checks  map[string]healthCheck
	closers []func(ctx context.Context) error
}

func (b *backend) Close(ctx context.Context) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			logger.Warn().Err(err).Msg("Failed to close storage connection")
		}
	}
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	b := &backend{checks: make(map[string]healthCheck)}
	key := cfg.Storage.Key

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		b.storage = memory.NewStorage()

	case config.StorageFile:
		b.storage = file.NewStorage(cfg.Storage.File)

	case config.StorageRedis:
		client, err := redisplatform.CreateRedisClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.storage = redisstorage.NewRedisStorage(client, key)
		b.checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })

	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func(context.Context) error { return db.Close() })
		store, err := sqlstore.NewStorage(ctx, db, sqlstore.SQLite, key)
		if err != nil {
			b.Close(ctx)
			return nil, err
		}
		b.storage = store
		b.checks["sqlite"] = store.HealthCheck

	case config.StoragePostgres:
		client, err := postgres.NewClient(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
		store, err := sqlstore.NewStorage(ctx, client.GetDB(), sqlstore.Postgres, key)
		if err != nil {
			b.Close(ctx)
			return nil, err
		}
		b.storage = store
		b.checks["postgres"] = store.HealthCheck

	case config.StorageMongo:
		client, err := mongoplatform.NewClient(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		b.storage = mongostorage.NewStorage(client.Collection(mongostorage.CollectionName), key)
		b.checks["mongo"] = client.HealthCheck
		b.closers = append(b.closers, client.Disconnect)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	logger.Info().Str("driver", cfg.Storage.Driver).Str("key", key).Msg("Storage initialized")
	return b, nil
}
