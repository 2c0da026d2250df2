package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/config"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/dataset"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/logging"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/metrics"
	storage "github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/minio"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/ports"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/postgres"
	redisrepo "github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/redis"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/service"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/transport/cli"
)

const (
	metricsJob     = "touristfinder_catalog"
	snapshotPrefix = "touristfinder:"
)

func main() {
	refresh := flag.Bool("refresh", false, "drop the cached catalog snapshot before loading")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exitf("Error: %v", err)
	}

	logger, cleanup, err := logging.NewLogger(logging.Options{
		Env:          cfg.AppEnv,
		Level:        cfg.LogLevel,
		LogstashAddr: cfg.LogstashTCPAddr,
	})
	if err != nil {
		exitf("Error: failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithLogger(ctx, logger)
	m := metrics.New()

	code := run(ctx, cfg, m, *refresh, flag.Args())

	if cfg.PushgatewayURL != "" {
		if err := m.Push(context.Background(), cfg.PushgatewayURL, metricsJob); err != nil {
			logger.Warn("metrics push failed", zap.String("gateway", cfg.PushgatewayURL), zap.Error(err))
		}
	}
	stop()
	cleanup()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, m *metrics.Metrics, refresh bool, args []string) int {
	logger := logging.FromContext(ctx)

	var objects *storage.Storage
	if cfg.MinIOEnabled() {
		client, err := storage.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			logger.Error("failed to init minio client", zap.Error(err))
			return 1
		}
		objects = storage.NewStorage(client, cfg.MinIOPublicURL)
	}

	source, closeSource, err := buildSource(ctx, cfg, objects, m, logger)
	if err != nil {
		logger.Error("failed to set up catalog source", zap.String("source", cfg.CatalogSource), zap.Error(err))
		return 1
	}
	defer closeSource()

	if cached, ok := source.(*service.CachedSource); ok && refresh {
		if err := cached.Invalidate(ctx); err != nil {
			logger.Warn("failed to drop cached catalog", zap.Error(err))
		}
	}

	svcCfg := service.CatalogServiceConfig{
		DefaultPageSize: cfg.DefaultPageSize,
		Metrics:         m,
		Logger:          logger,
	}
	catalogSvc, err := service.LoadCatalogService(ctx, source, cfg.CatalogSource, svcCfg)
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		return 1
	}

	var exportStorage ports.ObjectStorage
	if objects != nil {
		exportStorage = objects
	}
	app := cli.NewApp(cli.Services{
		Catalog:   catalogSvc,
		Dashboard: service.NewDashboardService(catalogSvc, cfg.TopDestinations),
		Booking:   service.NewBookingService(catalogSvc, m, logger),
		Export: service.NewExportService(catalogSvc, exportStorage, service.ExportServiceConfig{
			Bucket:  cfg.MinIOExportBucket,
			Metrics: m,
			Logger:  logger,
		}),
	}, os.Stdin, os.Stdout, logger)

	switch err := app.Run(ctx, args); {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, cli.ErrUsage):
		if err != cli.ErrUsage {
			fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
		}
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
		return 1
	}
}

// buildSource picks the configured catalog source and, when Redis is set,
// puts the snapshot cache in front of it.
func buildSource(ctx context.Context, cfg config.Config, objects *storage.Storage, m *metrics.Metrics, logger *zap.Logger) (ports.CatalogSource, func(), error) {
	var (
		source  ports.CatalogSource
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.CatalogSource {
	case config.SourcePostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close() })
		source = postgres.NewCatalogRepo(db)
	case config.SourceMinIO:
		if objects == nil {
			return nil, nil, errors.New("minio catalog source requires MINIO_ENDPOINT and credentials")
		}
		source = dataset.NewObjectSource(objects, cfg.MinIODatasetBucket, cfg.MinIODatasetObject)
	default:
		source = dataset.Embedded{}
	}

	if cfg.RedisAddr != "" {
		client := redisrepo.NewClient(redisrepo.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		closers = append(closers, func() { _ = client.Close() })
		cache := redisrepo.NewSnapshotCache(client, snapshotPrefix)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, loading catalog without snapshots", zap.Error(err))
		}
		source = service.NewCachedSource(source, cache, "catalog:"+cfg.CatalogSource, cfg.CatalogCacheTTL, m, logger)
	}
	return source, closeAll, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
