package job

import (
	"context"

	"github.com/honeycarbs/job-discovery/internal/domain"
)

// Provider represents an external job data source
type Provider interface {
	// e.g. "jobdiscovery"
	Name() string

	// Search returns normalized jobs for a query, in source order
	Search(ctx context.Context, session domain.Session, query string, filters domain.JobSearchFilters) ([]domain.Job, error)
}
