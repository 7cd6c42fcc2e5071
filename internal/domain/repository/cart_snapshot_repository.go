// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no cart snapshot is stored under a key.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

// CartSnapshotRepository stores serialized cart snapshots under well-known keys.
type CartSnapshotRepository interface {
	// Load returns the raw snapshot stored under key, or ErrSnapshotNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores data under key, replacing any previous snapshot.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the snapshot under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
