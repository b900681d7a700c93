//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/job-discovery/internal/config"
	"github.com/honeycarbs/job-discovery/internal/domain/job"
	"github.com/honeycarbs/job-discovery/pkg/jobs"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(ctx context.Context, cfg config.Config) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - job discovery API
		provideHTTPConfig,
		jobs.NewHTTPTransport,
		wire.Bind(new(jobs.Transport), new(*jobs.HTTPTransport)),
		jobs.NewClient,

		// Infrastructure - Neo4j
		provideNeo4jClient,

		// Repositories
		provideJobRepository,

		// Providers
		provideJobDiscoveryProvider,
		provideJobProviders,

		// Services
		job.NewServiceWithDeps,

		newResources,
	)

	return nil, nil, nil
}
