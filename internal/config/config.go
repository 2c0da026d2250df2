package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
	SourceMinIO    = "minio"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	AppEnv          string
	LogLevel        string
	LogstashTCPAddr string

	CatalogSource string
	DatabaseURL   string

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOPublicURL     string
	MinIODatasetBucket string
	MinIODatasetObject string
	MinIOExportBucket  string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration

	PushgatewayURL  string
	DefaultPageSize int
	TopDestinations int
}

// Load reads the environment (and .env when present). Settings required by
// the selected catalog source are checked here so that a misconfigured run
// fails before any connection is attempted.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: .env file not loaded: %v", err)
	}

	var problems []string

	redisDB, err := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		problems = append(problems, "REDIS_DB must be a non-negative integer")
	}

	cacheTTL, err := time.ParseDuration(getenv("CATALOG_CACHE_TTL", "10m"))
	if err != nil || cacheTTL < 0 {
		problems = append(problems, "CATALOG_CACHE_TTL must be a non-negative duration")
	}

	pageSize := positiveInt("DEFAULT_PAGE_SIZE", 12, &problems)
	topN := positiveInt("DASHBOARD_TOP_DESTINATIONS", 5, &problems)

	cfg := Config{
		AppEnv:             getenv("APP_ENV", "local"),
		LogLevel:           getenv("LOG_LEVEL", ""),
		LogstashTCPAddr:    getenv("LOGSTASH_TCP_ADDR", ""),
		CatalogSource:      strings.ToLower(getenv("CATALOG_SOURCE", SourceEmbedded)),
		DatabaseURL:        getenv("DATABASE_URL", ""),
		MinIOEndpoint:      getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        getenv("MINIO_USE_SSL", "false") == "true",
		MinIOPublicURL:     getenv("MINIO_PUBLIC_URL", ""),
		MinIODatasetBucket: getenv("MINIO_BUCKET_DATASETS", "touristfinder-datasets"),
		MinIODatasetObject: getenv("MINIO_DATASET_OBJECT", "catalog.yaml"),
		MinIOExportBucket:  getenv("MINIO_BUCKET_EXPORTS", ""),
		RedisAddr:          getenv("REDIS_ADDR", ""),
		RedisPassword:      getenv("REDIS_PASSWORD", ""),
		RedisDB:            redisDB,
		CatalogCacheTTL:    cacheTTL,
		PushgatewayURL:     getenv("PUSHGATEWAY_URL", ""),
		DefaultPageSize:    pageSize,
		TopDestinations:    topN,
	}

	switch cfg.CatalogSource {
	case SourceEmbedded:
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required for the postgres catalog source")
		}
	case SourceMinIO:
		problems = append(problems, cfg.missingMinIO()...)
	default:
		problems = append(problems, fmt.Sprintf("unknown CATALOG_SOURCE %q", cfg.CatalogSource))
	}
	if cfg.MinIOExportBucket != "" && cfg.CatalogSource != SourceMinIO {
		problems = append(problems, cfg.missingMinIO()...)
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return cfg, nil
}

// MinIOEnabled reports whether an object store is configured.
func (c Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func (c Config) missingMinIO() []string {
	var out []string
	for _, kv := range [][2]string{
		{"MINIO_ENDPOINT", c.MinIOEndpoint},
		{"MINIO_ACCESS_KEY", c.MinIOAccessKey},
		{"MINIO_SECRET_KEY", c.MinIOSecretKey},
	} {
		if kv[1] == "" {
			out = append(out, kv[0]+" is required")
		}
	}
	return out
}

func positiveInt(key string, def int, problems *[]string) int {
	v, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil || v <= 0 {
		*problems = append(*problems, key+" must be a positive integer")
		return def
	}
	return v
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
