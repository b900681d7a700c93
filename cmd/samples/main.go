package main

import (
	"context"
	"log"
	"os"

	"github.com/honeycarbs/job-discovery/internal/config"
	"github.com/honeycarbs/job-discovery/internal/samples"
	"github.com/honeycarbs/job-discovery/pkg/jobs"
	"github.com/honeycarbs/job-discovery/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	transport, err := jobs.NewHTTPTransport(ctx, jobs.HTTPConfig{
		Endpoint:        cfg.Jobs.Endpoint,
		CredentialsPath: cfg.Jobs.CredentialsPath,
		APIKey:          cfg.Jobs.APIKey,
		Timeout:         cfg.Jobs.Timeout,
	})
	if err != nil {
		logger.Error("failed to create jobs transport", "err", err)
		os.Exit(1)
	}

	client, err := jobs.NewClient(transport)
	if err != nil {
		logger.Error("failed to create jobs client", "err", err)
		os.Exit(1)
	}

	// hashed once so every sample shares the session's metadata
	md := jobs.NewRequestMetadata("sample-user", "sample-session", cfg.Jobs.Domain)

	logger.Info("running search samples", "endpoint", cfg.Jobs.Endpoint, "domain", cfg.Jobs.Domain)

	if err := samples.RunAll(ctx, client, md, os.Stdout); err != nil {
		logger.Error("search sample failed", "err", err)
		os.Exit(1)
	}

	logger.Info("search samples completed")
}
