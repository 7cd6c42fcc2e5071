// Package persistence selects and wires the cart snapshot storage backend.
package persistence

import (
	"context"
	"log/slog"

	"hafood/config"
	"hafood/internal/domain/constants"
	"hafood/internal/domain/lifecycle"
	"hafood/internal/domain/repository"
	"hafood/internal/errors"
	"hafood/internal/infra/persistence/blobstore"
	"hafood/internal/infra/persistence/postgres"
	"hafood/internal/infra/persistence/redisstore"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gorm.io/gorm"
)

// StorageParams holds dependencies for creating the snapshot repository
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewCartSnapshotRepository creates the snapshot repository for the configured provider
func NewCartSnapshotRepository(params StorageParams) (repository.CartSnapshotRepository, error) {
	storage := params.Config.Storage

	switch storage.Provider {
	case constants.StorageProviderRedis:
		return newRedisStore(params)

	case constants.StorageProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres storage provider requires postgres configuration")
		}
		params.Logger.Info("Using PostgreSQL cart snapshot storage")

		return postgres.NewCartSnapshotRepository(params.DB), nil

	case constants.StorageProviderBlob, "":
		return newBlobStore(params)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", storage.Provider)
	}
}

func newBlobStore(params StorageParams) (repository.CartSnapshotRepository, error) {
	bucketURL := params.Config.Storage.BlobURL
	if bucketURL == "" {
		bucketURL = "mem://"
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Using blob cart snapshot storage", slog.String("url", bucketURL))

	return blobstore.NewCartSnapshotStore(bucket), nil
}

func newRedisStore(params StorageParams) (repository.CartSnapshotRepository, error) {
	redisCfg := params.Config.Storage.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis storage provider requires storage.redis.addr")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis cart snapshot storage",
		slog.String("addr", redisCfg.Addr),
		slog.Duration("ttl", redisCfg.TTL),
	)

	return redisstore.NewCartSnapshotStore(client, redisCfg.TTL), nil
}
