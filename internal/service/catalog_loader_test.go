package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/dataset"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/metrics"
	redisrepo "github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/redis"
)

func embeddedDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := dataset.Embedded{}.Load(context.Background())
	require.NoError(t, err)
	return ds
}

func TestCachedSource_MissThenHit(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{ds: embeddedDataset(t)}
	cache := newMemorySnapshotCache()
	cached := NewCachedSource(source, cache, "catalog:embedded", 15*time.Minute, metrics.New(), nil)

	first, err := cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.loads)
	assert.Equal(t, 15*time.Minute, cache.ttls["catalog:embedded"])

	second, err := cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.loads, "second load should be served from the snapshot")
	assert.Equal(t, first.Destinations, second.Destinations)
	assert.NotSame(t, first, second)
}

func TestCachedSource_BypassesBrokenCache(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{ds: embeddedDataset(t)}
	cache := newMemorySnapshotCache()
	cache.getErr = errors.New("redis: connection refused")
	cache.setErr = errors.New("redis: connection refused")

	ds, err := NewCachedSource(source, cache, "k", time.Minute, nil, nil).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.Destinations, 6)
	assert.Equal(t, 1, source.loads)
}

func TestCachedSource_IgnoresCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{ds: embeddedDataset(t)}
	cache := newMemorySnapshotCache()
	cache.items["k"] = []byte("{not json")

	ds, err := NewCachedSource(source, cache, "k", time.Minute, nil, nil).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.Activities, 5)
	assert.Equal(t, 1, source.loads)
}

func TestCachedSource_IgnoresInvalidSnapshot(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{ds: embeddedDataset(t)}
	cache := newMemorySnapshotCache()
	cache.items["k"] = []byte(`{"touristSpots":[{"id":"1","name":"X","category":"beach","rating":9}]}`)

	_, err := NewCachedSource(source, cache, "k", time.Minute, nil, nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.loads)
}

func TestCachedSource_SourceErrorIsReturned(t *testing.T) {
	boom := errors.New("bucket not found")
	cache := newMemorySnapshotCache()

	_, err := NewCachedSource(&countingSource{err: boom}, cache, "k", time.Minute, nil, nil).Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, cache.items)
}

func TestCachedSource_WithRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redisrepo.NewClient(redisrepo.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	source := &countingSource{ds: embeddedDataset(t)}
	cached := NewCachedSource(source, redisrepo.NewSnapshotCache(client, "touristfinder:"), "catalog", time.Hour, nil, nil)

	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists("touristfinder:catalog"))

	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.loads)

	require.NoError(t, cached.Invalidate(ctx))
	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.loads)
}
