package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/metrics"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/ports"
)

// CachedSource serves a dataset snapshot from the cache when one is stored
// and otherwise loads from the wrapped source and stores the result. Cache
// failures are logged and bypassed; they never fail a load.
type CachedSource struct {
	source  ports.CatalogSource
	cache   ports.SnapshotCache
	key     string
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewCachedSource(source ports.CatalogSource, cache ports.SnapshotCache, key string, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{
		source:  source,
		cache:   cache,
		key:     key,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func (s *CachedSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if ds, ok := s.fromCache(ctx); ok {
		return ds, nil
	}

	ds, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(ds)
	if err != nil {
		s.logger.Warn("encode catalog snapshot", zap.Error(err))
		return ds, nil
	}
	if err := s.cache.Set(ctx, s.key, data, s.ttl); err != nil {
		s.logger.Warn("store catalog snapshot", zap.String("key", s.key), zap.Error(err))
	}
	return ds, nil
}

// Invalidate drops the stored snapshot so the next Load hits the source.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}

func (s *CachedSource) fromCache(ctx context.Context) (*domain.Dataset, bool) {
	data, err := s.cache.Get(ctx, s.key)
	switch {
	case errors.Is(err, ports.ErrSnapshotMiss):
		s.metrics.CacheLookup("miss")
		return nil, false
	case err != nil:
		s.metrics.CacheLookup("error")
		s.logger.Warn("read catalog snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		s.metrics.CacheLookup("error")
		s.logger.Warn("corrupt catalog snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}
	if err := ds.Validate(); err != nil {
		s.metrics.CacheLookup("error")
		s.logger.Warn("invalid catalog snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}
	s.metrics.CacheLookup("hit")
	return &ds, true
}
