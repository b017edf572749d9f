package config

import (
	"context"
	"fmt"

	"medical-report-analyzer/internal/domain"
	"medical-report-analyzer/internal/service"
	"medical-report-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config      domain.Config
	Logger      domain.Logger
	Fetcher     domain.DocumentFetcher
	Extractor   domain.TextExtractor
	ModelClient domain.ModelClient
	Cache       domain.AnalysisCache
	Analyzer    domain.ReportAnalyzer
}

// NewContainer creates a new dependency injection container. It fails when
// the model credentials are missing or the Vertex AI client cannot be
// constructed; the process refuses to start without its oracle.
func NewContainer(ctx context.Context) (*Container, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(config.GetLogLevel())

	modelClient, err := service.NewGeminiClient(ctx, config.GetGCPProjectID(), config.GetGCPLocation(), config.GetModelName())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model client: %w", err)
	}

	cache := service.NewAnalysisCache(CacheCapacity)

	analyzer := service.NewReportAnalyzer(
		modelClient,
		cache,
		appLogger,
		service.RetryPolicy{MaxAttempts: MaxRetries, Delay: RetryDelay},
	)

	return &Container{
		Config:      config,
		Logger:      appLogger,
		Fetcher:     service.NewDocumentFetcher(DownloadTimeout, appLogger),
		Extractor:   service.NewTextExtractor(appLogger),
		ModelClient: modelClient,
		Cache:       cache,
		Analyzer:    analyzer,
	}, nil
}
