// Package samples holds the basic job discovery searches: keyword only,
// keyword with one or several locations, and keyword with employment types.
package samples

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/honeycarbs/job-discovery/pkg/jobs"
)

// Searcher is the part of jobs.Client the samples need
type Searcher interface {
	Search(ctx context.Context, req jobs.SearchRequest) (*jobs.SearchResponse, error)
}

// KeywordSearch looks for analyst jobs and prints each match
func KeywordSearch(ctx context.Context, s Searcher, md jobs.RequestMetadata, w io.Writer) error {
	resp, err := s.Search(ctx, jobs.SearchRequest{
		Metadata: md,
		Query:    jobs.JobQuery{Keywords: "analyst"},
		Mode:     jobs.SearchModeJobSearch,
	})
	if err != nil {
		return fmt.Errorf("keyword search: %w", err)
	}

	if len(resp.Matches) == 0 {
		_, err = fmt.Fprintln(w, "No jobs for this search")
		return err
	}

	for _, m := range resp.Matches {
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", m.Title, m.Identifier, m.Summary); err != nil {
			return err
		}
	}
	return nil
}

// KeywordAndSingleLocationSearch looks for software engineers within half a mile of one address
func KeywordAndSingleLocationSearch(ctx context.Context, s Searcher, md jobs.RequestMetadata, w io.Writer) error {
	radius := 0.5
	return searchAndDump(ctx, s, w, "single location search", jobs.SearchRequest{
		Metadata: md,
		Query: jobs.JobQuery{
			Keywords: "Software Engineer",
			LocationFilters: []jobs.LocationFilter{
				{Name: "1600 Amphitheatre Parkway, Mountain View, CA", RadiusMiles: &radius},
			},
		},
		Mode: jobs.SearchModeJobSearch,
	})
}

// KeywordAndMultiLocationsSearch looks for analysts in either of two cities
func KeywordAndMultiLocationsSearch(ctx context.Context, s Searcher, md jobs.RequestMetadata, w io.Writer) error {
	return searchAndDump(ctx, s, w, "multi location search", jobs.SearchRequest{
		Metadata: md,
		Query: jobs.JobQuery{
			Keywords: "Analyst",
			LocationFilters: []jobs.LocationFilter{
				{Name: "Mountain View, CA"},
				{Name: "Sunnyvale, CA"},
			},
		},
		Mode: jobs.SearchModeJobSearch,
	})
}

// KeywordAndMultiEmploymentTypesSearch looks for full time or intern analyst roles
func KeywordAndMultiEmploymentTypesSearch(ctx context.Context, s Searcher, md jobs.RequestMetadata, w io.Writer) error {
	return searchAndDump(ctx, s, w, "employment types search", jobs.SearchRequest{
		Metadata: md,
		Query: jobs.JobQuery{
			Keywords:        "Analyst",
			EmploymentTypes: []jobs.EmploymentType{jobs.EmploymentTypeFullTime, jobs.EmploymentTypeIntern},
		},
		Mode: jobs.SearchModeJobSearch,
	})
}

// RunAll runs every sample in order and stops at the first failure
func RunAll(ctx context.Context, s Searcher, md jobs.RequestMetadata, w io.Writer) error {
	for _, run := range []func(context.Context, Searcher, jobs.RequestMetadata, io.Writer) error{
		KeywordSearch,
		KeywordAndSingleLocationSearch,
		KeywordAndMultiLocationsSearch,
		KeywordAndMultiEmploymentTypesSearch,
	} {
		if err := run(ctx, s, md, w); err != nil {
			return err
		}
	}
	return nil
}

func searchAndDump(ctx context.Context, s Searcher, w io.Writer, name string, req jobs.SearchRequest) error {
	resp, err := s.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
