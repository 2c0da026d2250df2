package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/metrics"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/ports"
)

var ErrExportNoTarget = errors.New("export has no storage bucket or writer")

var destinationExportHeader = []string{
	"id", "name", "category", "region", "province", "location",
	"rating", "review_count", "entry_fee", "featured", "best_time_to_visit",
}

type ExportServiceConfig struct {
	Bucket  string
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

type ExportResult struct {
	Rows       int    `json:"rows"`
	ObjectName string `json:"objectName,omitempty"`
	URL        string `json:"url,omitempty"`
}

// ExportService renders destination query results as CSV, uploading them to
// object storage when a bucket is configured.
type ExportService struct {
	catalog *CatalogService
	storage ports.ObjectStorage
	bucket  string
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
	newID   func() uuid.UUID
}

func NewExportService(catalogSvc *CatalogService, storage ports.ObjectStorage, cfg ExportServiceConfig) *ExportService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		catalog: catalogSvc,
		storage: storage,
		bucket:  cfg.Bucket,
		metrics: cfg.Metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.New,
	}
}

// ExportDestinations writes every destination matching q. With storage the
// file is uploaded under exports/<yyyy>/<mm>/; otherwise it goes to w.
func (s *ExportService) ExportDestinations(ctx context.Context, q catalog.Query, filename string, w io.Writer) (_ *ExportResult, err error) {
	target := "writer"
	if s.uploads() {
		target = "storage"
	}
	defer func() { s.metrics.Export(target, err) }()

	if !s.uploads() && w == nil {
		return nil, ErrExportNoTarget
	}

	spots := s.catalog.SearchDestinations(ctx, q)
	var buf bytes.Buffer
	if err := writeDestinationsCSV(&buf, spots); err != nil {
		return nil, err
	}
	result := &ExportResult{Rows: len(spots)}

	if !s.uploads() {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return nil, fmt.Errorf("write export: %w", err)
		}
		return result, nil
	}

	objectName := buildExportObjectName(s.now(), s.newID(), filename)
	url, err := s.storage.Upload(ctx, s.bucket, objectName, "text/csv", bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, err
	}
	result.ObjectName = objectName
	result.URL = url
	s.logger.Info("destinations exported",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int("rows", result.Rows),
	)
	return result, nil
}

func (s *ExportService) uploads() bool {
	return s.storage != nil && s.bucket != ""
}

func writeDestinationsCSV(w io.Writer, spots []domain.Destination) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(destinationExportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, spot := range spots {
		fee := ""
		if spot.EntryFee != nil {
			fee = strconv.FormatInt(*spot.EntryFee, 10)
		}
		record := []string{
			spot.ID,
			spot.Name,
			string(spot.Category),
			spot.Region,
			spot.Province,
			spot.Location,
			strconv.FormatFloat(spot.Rating, 'f', 1, 64),
			strconv.Itoa(spot.ReviewCount),
			fee,
			strconv.FormatBool(spot.Featured),
			spot.BestTimeToVisit,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write export row %s: %w", spot.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func buildExportObjectName(now time.Time, id uuid.UUID, filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = "destinations.csv"
	}
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}
	return fmt.Sprintf("exports/%04d/%02d/%s-%s", now.Year(), int(now.Month()), id.String(), name)
}
