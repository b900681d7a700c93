package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-discovery/internal/domain"
	"github.com/honeycarbs/job-discovery/internal/domain/job"
	"github.com/honeycarbs/job-discovery/pkg/logging"
)

// LocationParam is one location filter of the job_search tool
type LocationParam struct {
	Name        string   `json:"name" jsonschema:"Address, city or region"`
	RadiusMiles *float64 `json:"radius_miles,omitempty" jsonschema:"Search radius around this location"`
}

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Query           string          `json:"query" jsonschema:"Keywords to search for"`
	Locations       []LocationParam `json:"locations,omitempty" jsonschema:"Locations; a job near any of them matches"`
	EmploymentTypes []string        `json:"employment_types,omitempty" jsonschema:"Employment types such as FULL_TIME or INTERN"`
	UserID          string          `json:"user_id,omitempty" jsonschema:"End user identifier; hashed before it is sent"`
	SessionID       string          `json:"session_id,omitempty" jsonschema:"End user session identifier; hashed before it is sent"`
	Domain          string          `json:"domain,omitempty" jsonschema:"Site the search is conducted on"`
}

// WithJobSearch registers the job_search tool backed by svc
func WithJobSearch(svc job.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Search the job discovery API by keywords, locations and employment types",
		}, newJobSearch(svc, reg.logger))
	}
}

func newJobSearch(svc job.Service, logger *logging.Logger) func(context.Context, *sdkmcp.CallToolRequest, *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
		if svc == nil {
			return nil, nil, fmt.Errorf("job_search: job service not configured")
		}
		if params == nil || params.Query == "" {
			return nil, nil, fmt.Errorf("job_search: query is required")
		}

		session := domain.Session{
			UserID:    params.UserID,
			SessionID: params.SessionID,
			Domain:    params.Domain,
		}

		filters := domain.JobSearchFilters{EmploymentTypes: params.EmploymentTypes}
		for _, loc := range params.Locations {
			filters.Locations = append(filters.Locations, domain.Location{
				Name:        loc.Name,
				RadiusMiles: loc.RadiusMiles,
			})
		}

		result, err := svc.Search(ctx, session, params.Query, filters)
		if err != nil {
			logger.Warn("job_search failed", "query", params.Query, "err", err)
			return nil, nil, fmt.Errorf("job_search: %w", err)
		}

		logger.Info("job_search completed", "query", params.Query, "jobs", len(result.Jobs))

		summary := fmt.Sprintf("Found %d job(s) for %q", len(result.Jobs), params.Query)
		if len(result.Jobs) == 0 {
			summary = "No jobs for this search"
		}

		res, err := jsonResult(summary, result)
		if err != nil {
			return nil, nil, err
		}
		return res, nil, nil
	}
}
