// Package redisstore persists cart snapshots in Redis.
package redisstore

import (
	"context"
	"math/rand/v2"
	"time"

	"hafood/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// cartSnapshotStore implements the repository.CartSnapshotRepository interface.
type cartSnapshotStore struct {
	client  redis.UniversalClient
	baseTTL time.Duration // Zero keeps snapshots forever.
}

// NewCartSnapshotStore is the constructor for cartSnapshotStore.
func NewCartSnapshotStore(client redis.UniversalClient, ttl time.Duration) repository.CartSnapshotRepository {
	return &cartSnapshotStore{
		client:  client,
		baseTTL: ttl,
	}
}

func (s *cartSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get failed")
	}

	return data, nil
}

func (s *cartSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl()).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

func (s *cartSnapshotStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

// ttl spreads expirations by up to a tenth of the base TTL.
func (s *cartSnapshotStore) ttl() time.Duration {
	if s.baseTTL <= 0 {
		return 0
	}

	spread := s.baseTTL / 10
	if spread <= 0 {
		return s.baseTTL
	}

	return s.baseTTL + rand.N(spread)
}
