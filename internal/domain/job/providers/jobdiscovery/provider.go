package jobdiscovery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honeycarbs/job-discovery/internal/domain"
	jobdomain "github.com/honeycarbs/job-discovery/internal/domain/job"
	"github.com/honeycarbs/job-discovery/pkg/jobs"
)

const sourceName = "jobdiscovery"

// searchClient describes the subset of the jobs client used by the provider.
type searchClient interface {
	Search(ctx context.Context, req jobs.SearchRequest) (*jobs.SearchResponse, error)
}

// Provider implements job.Provider on top of the job discovery search API
type Provider struct {
	client        searchClient
	defaultDomain string
}

// NewProvider builds a job discovery provider. defaultDomain is used for
// sessions that carry no domain of their own.
func NewProvider(client searchClient, defaultDomain string) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("jobdiscovery provider: client is required")
	}
	return &Provider{client: client, defaultDomain: defaultDomain}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return sourceName
}

// Search queries the API and returns normalized jobs in result order
func (p *Provider) Search(ctx context.Context, session domain.Session, query string, filters domain.JobSearchFilters) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("jobdiscovery provider: client is nil")
	}

	req, err := p.buildRequest(session, query, filters)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		out = append(out, domain.Job{
			ID:         jobID(m.Identifier),
			Title:      m.Title,
			Summary:    m.Summary,
			Source:     sourceName,
			ExternalID: m.Identifier,
			Query:      query,
		})
	}

	return out, nil
}

func (p *Provider) buildRequest(session domain.Session, query string, filters domain.JobSearchFilters) (jobs.SearchRequest, error) {
	site := session.Domain
	if site == "" {
		site = p.defaultDomain
	}

	jq := jobs.JobQuery{Keywords: query}

	for _, loc := range filters.Locations {
		if loc.Name == "" {
			continue
		}
		jq.LocationFilters = append(jq.LocationFilters, jobs.LocationFilter{
			Name:        loc.Name,
			RadiusMiles: loc.RadiusMiles,
		})
	}

	for _, raw := range filters.EmploymentTypes {
		t, err := jobs.ParseEmploymentType(raw)
		if err != nil {
			return jobs.SearchRequest{}, fmt.Errorf("jobdiscovery provider: %w", err)
		}
		jq.EmploymentTypes = append(jq.EmploymentTypes, t)
	}

	return jobs.SearchRequest{
		Metadata: jobs.NewRequestMetadata(session.UserID, session.SessionID, site),
		Query:    jq,
		Mode:     jobs.SearchModeJobSearch,
	}, nil
}

// jobID derives a stable ID so repeated searches upsert the same record.
// Matches without a name get uuid.Nil and are assigned a fresh ID downstream.
func jobID(externalID string) domain.JobID {
	if externalID == "" {
		return uuid.Nil
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(sourceName+"/"+externalID))
}

var _ jobdomain.Provider = (*Provider)(nil)
