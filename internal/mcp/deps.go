package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-discovery/internal/config"
	"github.com/honeycarbs/job-discovery/internal/domain/job"
	"github.com/honeycarbs/job-discovery/internal/domain/job/providers/jobdiscovery"
	storage "github.com/honeycarbs/job-discovery/internal/storage/neo4j"
	"github.com/honeycarbs/job-discovery/pkg/jobs"
	n4j "github.com/honeycarbs/job-discovery/pkg/neo4j"
)

// Resources holds everything the MCP tools depend on
type Resources struct {
	JobService  job.Service
	Neo4jClient *n4j.Client // nil when Neo4j is not configured
}

// provideHTTPConfig extracts jobs transport config from main config
func provideHTTPConfig(cfg config.Config) jobs.HTTPConfig {
	return jobs.HTTPConfig{
		Endpoint:        cfg.Jobs.Endpoint,
		CredentialsPath: cfg.Jobs.CredentialsPath,
		APIKey:          cfg.Jobs.APIKey,
		Timeout:         cfg.Jobs.Timeout,
	}
}

// provideNeo4jClient connects to Neo4j when configured and returns nil otherwise
func provideNeo4jClient(ctx context.Context, cfg config.Config) (*n4j.Client, func(), error) {
	if !cfg.Neo4jEnabled() {
		return nil, func() {}, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close(context.Background())
	}
	return client, cleanup, nil
}

// provideJobRepository stores jobs in Neo4j, or drops them when no client is available
func provideJobRepository(client *n4j.Client) job.Repository {
	if client == nil {
		return job.DiscardRepository{}
	}
	return storage.NewJobRepository(client)
}

// provideJobDiscoveryProvider creates the search provider from the jobs client
func provideJobDiscoveryProvider(client *jobs.Client, cfg config.Config) (*jobdiscovery.Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("jobs client is required")
	}
	return jobdiscovery.NewProvider(client, cfg.Jobs.Domain)
}

// provideJobProviders creates a slice of job providers
func provideJobProviders(p *jobdiscovery.Provider) []job.Provider {
	return []job.Provider{p}
}

// newResources creates Resources struct
func newResources(jobService job.Service, neo4jClient *n4j.Client) *Resources {
	return &Resources{
		JobService:  jobService,
		Neo4jClient: neo4jClient,
	}
}
