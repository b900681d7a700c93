package job

import (
	"context"

	"github.com/honeycarbs/job-discovery/internal/domain"
)

// Repository persists and loads matched jobs
type Repository interface {
	// UpsertJobs creates or updates jobs keyed by Source + ExternalID
	UpsertJobs(ctx context.Context, jobs []domain.Job) error

	// FindByIDs loads full Job records for the given IDs
	FindByIDs(ctx context.Context, ids []domain.JobID) ([]domain.Job, error)
}

// DiscardRepository accepts writes and finds nothing. Used when no store is configured.
type DiscardRepository struct{}

func (DiscardRepository) UpsertJobs(context.Context, []domain.Job) error {
	return nil
}

func (DiscardRepository) FindByIDs(context.Context, []domain.JobID) ([]domain.Job, error) {
	return nil, nil
}

var _ Repository = DiscardRepository{}
