package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/honeycarbs/job-discovery/internal/domain"
)

type Service interface {
	Search(ctx context.Context, session domain.Session, query string, filters domain.JobSearchFilters) (domain.JobSearchResult, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	providers []Provider
	repo      Repository
	clock     func() time.Time
}

// WithProviders sets job providers
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	svc, err := newService(cfg.repo, cfg.providers, cfg.clock)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo Repository, providers []Provider) (Service, error) {
	svc, err := newService(repo, providers, time.Now)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newService(repo Repository, providers []Provider, clock func() time.Time) (*service, error) {
	if repo == nil {
		return nil, fmt.Errorf("job.Service: repository is required")
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("job.Service: at least one provider is required")
	}

	return &service{
		providers: providers,
		repo:      repo,
		clock:     clock,
	}, nil
}

type service struct {
	providers []Provider
	repo      Repository
	clock     func() time.Time
}

// Search queries providers in order, dedups and stores identified results.
// It fails only when every provider fails.
func (s *service) Search(
	ctx context.Context,
	session domain.Session,
	query string,
	filters domain.JobSearchFilters,
) (domain.JobSearchResult, error) {
	now := s.clock()

	if query == "" {
		return domain.JobSearchResult{}, fmt.Errorf("query is required")
	}

	type key struct {
		source     string
		externalID string
	}
	seen := make(map[key]struct{})
	allJobs := make([]domain.Job, 0)
	sourceCount := 0

	var errs []error
	for _, p := range s.providers {
		jobs, err := p.Search(ctx, session, query, filters)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		if len(jobs) > 0 {
			sourceCount++
		}

		for _, j := range jobs {
			// unidentified matches are shown but cannot be deduped or stored
			if j.Source != "" && j.ExternalID != "" {
				k := key{source: j.Source, externalID: j.ExternalID}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
			}

			if j.ID == uuid.Nil {
				j.ID = uuid.New()
			}
			if j.FetchedAt.IsZero() {
				j.FetchedAt = now
			}
			if j.Query == "" {
				j.Query = query
			}

			allJobs = append(allJobs, j)
		}
	}

	if len(errs) == len(s.providers) {
		return domain.JobSearchResult{}, errors.Join(errs...)
	}

	stored := make([]domain.Job, 0, len(allJobs))
	for _, j := range allJobs {
		if j.Source != "" && j.ExternalID != "" {
			stored = append(stored, j)
		}
	}

	if len(stored) > 0 {
		if err := s.repo.UpsertJobs(ctx, stored); err != nil {
			return domain.JobSearchResult{}, err
		}
	}

	summaries := make([]domain.JobSummary, 0, len(allJobs))
	for _, j := range allJobs {
		summaries = append(summaries, domain.JobSummary{
			ID:         j.ID,
			Title:      j.Title,
			ExternalID: j.ExternalID,
			Summary:    j.Summary,
			Source:     j.Source,
		})
	}

	return domain.JobSearchResult{
		Jobs:        summaries,
		FetchedAt:   now,
		SourceCount: sourceCount,
	}, nil
}
