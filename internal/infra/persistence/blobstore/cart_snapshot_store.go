// Package blobstore persists cart snapshots as JSON objects in a gocloud.dev bucket.
package blobstore

import (
	"context"
	"strings"

	"hafood/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const snapshotContentType = "application/json"

// cartSnapshotStore implements the repository.CartSnapshotRepository interface.
type cartSnapshotStore struct {
	bucket *blob.Bucket
}

// NewCartSnapshotStore is the constructor for cartSnapshotStore.
func NewCartSnapshotStore(bucket *blob.Bucket) repository.CartSnapshotRepository {
	return &cartSnapshotStore{
		bucket: bucket,
	}
}

func (s *cartSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read cart snapshot %s", key)
	}

	return data, nil
}

func (s *cartSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, objectKey(key), data, &blob.WriterOptions{
		ContentType: snapshotContentType,
	}); err != nil {
		return errors.Wrapf(err, "failed to write cart snapshot %s", key)
	}

	return nil
}

func (s *cartSnapshotStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, objectKey(key)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete cart snapshot %s", key)
	}

	return nil
}

// objectKey maps "ha-food-cart:<session>" to "ha-food-cart/<session>.json".
func objectKey(key string) string {
	return strings.ReplaceAll(key, ":", "/") + ".json"
}
