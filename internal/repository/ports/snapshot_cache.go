package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSnapshotMiss is returned by SnapshotCache.Get when no snapshot is stored.
var ErrSnapshotMiss = errors.New("snapshot not cached")

type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
