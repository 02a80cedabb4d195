// Package bootstrap provides dependency initialization for the job board API.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/maauso/dreamjob/internal/candidate"
	"github.com/maauso/dreamjob/internal/city"
	"github.com/maauso/dreamjob/internal/config"
	"github.com/maauso/dreamjob/internal/file"
	"github.com/maauso/dreamjob/internal/server"
	"github.com/maauso/dreamjob/internal/storage"
	"github.com/maauso/dreamjob/internal/vacancy"
)

// Dependencies holds all initialized dependencies for the HTTP server.
type Dependencies struct {
	Vacancies  vacancy.Repository
	Candidates candidate.Repository
	Cities     *city.Catalog
	Files      *file.Service
	Metrics    *server.Metrics
}

// NewDependencies creates and initializes all dependencies for the application.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	store, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	vacancies := vacancy.NewMemoryRepository()
	candidates := candidate.NewMemoryRepository()
	if cfg.SeedData {
		if err := vacancy.Seed(ctx, vacancies); err != nil {
			return nil, err
		}
		if err := candidate.Seed(ctx, candidates); err != nil {
			return nil, err
		}
		logger.Info("demo data seeded",
			slog.Int("vacancies", vacancies.Count(ctx)),
			slog.Int("candidates", candidates.Count(ctx)),
		)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := server.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	return &Dependencies{
		Vacancies:  vacancies,
		Candidates: candidates,
		Cities:     city.NewCatalog(city.Demo()...),
		Files:      file.NewService(file.NewMemoryRepository(), store, logger),
		Metrics:    metrics,
	}, nil
}

// initStorage creates the appropriate storage backend based on configuration.
func initStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.S3Enabled() {
		s3Cfg := storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}
		s3Store, err := storage.NewS3Storage(ctx, s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("create S3 storage: %w", err)
		}
		logger.Info("S3 storage configured",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)
		return s3Store, nil
	}

	localStore, err := storage.NewLocalStorage(cfg.FilesDir)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	logger.Info("local storage configured",
		slog.String("files_dir", cfg.FilesDir),
	)
	return localStore, nil
}
