package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/metrics"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/ports"
)

var (
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrRegionNotFound        = errors.New("region not found")
)

const defaultPageSize = 12

// Page is one window of a query result. Total counts every match.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type CatalogServiceConfig struct {
	DefaultPageSize int
	Metrics         *metrics.Metrics
	Logger          *zap.Logger
}

// CatalogService answers list and detail queries over a loaded dataset. The
// dataset is never modified after construction.
type CatalogService struct {
	dataset *domain.Dataset

	destinations   catalog.Schema[domain.Destination]
	accommodations catalog.Schema[domain.Accommodation]
	activities     catalog.Schema[domain.Activity]

	pageSize int
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

func NewCatalogService(ds *domain.Dataset, cfg CatalogServiceConfig) *CatalogService {
	if ds == nil {
		ds = &domain.Dataset{}
	}
	pageSize := cfg.DefaultPageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		dataset:        ds,
		destinations:   catalog.DestinationSchema(),
		accommodations: catalog.AccommodationSchema(),
		activities:     catalog.ActivitySchema(),
		pageSize:       pageSize,
		metrics:        cfg.Metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// LoadCatalogService loads and validates a dataset from source and wraps it.
// sourceName labels the load in logs and metrics.
func LoadCatalogService(ctx context.Context, source ports.CatalogSource, sourceName string, cfg CatalogServiceConfig) (*CatalogService, error) {
	ds, err := source.Load(ctx)
	if err == nil {
		err = ds.Validate()
	}
	cfg.Metrics.SourceLoaded(sourceName, err)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", sourceName, err)
	}
	svc := NewCatalogService(ds, cfg)
	svc.logger.Info("catalog loaded",
		zap.String("source", sourceName),
		zap.Int("destinations", len(ds.Destinations)),
		zap.Int("accommodations", len(ds.Accommodations)),
		zap.Int("activities", len(ds.Activities)),
		zap.Int("regions", len(ds.Regions)),
	)
	return svc, nil
}

func (s *CatalogService) Dataset() *domain.Dataset { return s.dataset }

func (s *CatalogService) DestinationSchema() catalog.Schema[domain.Destination] {
	return s.destinations
}

func (s *CatalogService) ListDestinations(ctx context.Context, q catalog.Query, limit, offset int) Page[domain.Destination] {
	return listPage(s, ctx, s.dataset.Destinations, s.destinations, q, limit, offset)
}

func (s *CatalogService) ListAccommodations(ctx context.Context, q catalog.Query, limit, offset int) Page[domain.Accommodation] {
	return listPage(s, ctx, s.dataset.Accommodations, s.accommodations, q, limit, offset)
}

func (s *CatalogService) ListActivities(ctx context.Context, q catalog.Query, limit, offset int) Page[domain.Activity] {
	return listPage(s, ctx, s.dataset.Activities, s.activities, q, limit, offset)
}

// SearchDestinations returns every match without pagination.
func (s *CatalogService) SearchDestinations(ctx context.Context, q catalog.Query) []domain.Destination {
	return evaluate(s, ctx, s.dataset.Destinations, s.destinations, q)
}

func (s *CatalogService) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	return findByID(s.dataset.Destinations, id, func(d domain.Destination) string { return d.ID }, ErrDestinationNotFound)
}

func (s *CatalogService) GetAccommodation(ctx context.Context, id string) (*domain.Accommodation, error) {
	return findByID(s.dataset.Accommodations, id, func(a domain.Accommodation) string { return a.ID }, ErrAccommodationNotFound)
}

func (s *CatalogService) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	return findByID(s.dataset.Activities, id, func(a domain.Activity) string { return a.ID }, ErrActivityNotFound)
}

func (s *CatalogService) Regions(ctx context.Context) []domain.Region {
	return slices.Clone(s.dataset.Regions)
}

// RegionDestinations returns the spots inside an island group, narrowed by q.
// The region is matched by id or, case-insensitively, by name.
func (s *CatalogService) RegionDestinations(ctx context.Context, region string, q catalog.Query) (*domain.Region, []domain.Destination, error) {
	key := strings.TrimSpace(region)
	for i := range s.dataset.Regions {
		r := s.dataset.Regions[i]
		if r.ID == key || strings.EqualFold(r.Name, key) {
			members := catalog.RegionMembers(s.dataset.Destinations, r)
			return &r, evaluate(s, ctx, members, s.destinations, q), nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrRegionNotFound, key)
}

// NewDestinationSession starts an interactive browsing session over the
// destinations.
func (s *CatalogService) NewDestinationSession() *catalog.Session[domain.Destination] {
	return catalog.NewSession(s.dataset.Destinations, s.destinations)
}

func evaluate[T any](s *CatalogService, ctx context.Context, items []T, schema catalog.Schema[T], q catalog.Query) []T {
	start := s.now()
	result := catalog.Apply(items, schema, q)
	took := s.now().Sub(start)

	s.metrics.ObserveQuery(schema.Kind, took, len(result))
	s.logger.Debug("catalog query",
		zap.String("kind", schema.Kind),
		zap.String("search", q.Search),
		zap.Any("filters", q.Filters),
		zap.String("sort", q.Sort),
		zap.Int("results", len(result)),
		zap.Duration("took", took),
	)
	return result
}

func listPage[T any](s *CatalogService, ctx context.Context, items []T, schema catalog.Schema[T], q catalog.Query, limit, offset int) Page[T] {
	result := evaluate(s, ctx, items, schema, q)
	return paginate(result, limit, offset, s.pageSize)
}

func paginate[T any](items []T, limit, offset, defaultLimit int) Page[T] {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	total := len(items)
	start := min(offset, total)
	end := min(start+limit, total)
	return Page[T]{
		Items:  items[start:end:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}

func findByID[T any](items []T, id string, idOf func(T) string, notFound error) (*T, error) {
	id = strings.TrimSpace(id)
	for i := range items {
		if idOf(items[i]) == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", notFound, id)
}
