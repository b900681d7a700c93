package jobdiscovery

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/honeycarbs/job-discovery/internal/domain"
	"github.com/honeycarbs/job-discovery/pkg/jobs"
)

type fakeClient struct {
	resp *jobs.SearchResponse
	err  error
	got  jobs.SearchRequest
}

func (f *fakeClient) Search(_ context.Context, req jobs.SearchRequest) (*jobs.SearchResponse, error) {
	f.got = req
	return f.resp, f.err
}

func TestProviderSearchMapsMatches(t *testing.T) {
	fc := &fakeClient{resp: &jobs.SearchResponse{Matches: []jobs.MatchedJob{
		{Title: "Analyst", Identifier: "jobs/1", Summary: "crunch numbers"},
		{Title: "Senior Analyst", Identifier: "jobs/2", Summary: "crunch more numbers"},
	}}}
	p, err := NewProvider(fc, "www.google.com")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	radius := 0.5
	got, err := p.Search(context.Background(),
		domain.Session{UserID: "u", SessionID: "s"},
		"analyst",
		domain.JobSearchFilters{
			Locations:       []domain.Location{{Name: "Mountain View, CA", RadiusMiles: &radius}, {Name: ""}},
			EmploymentTypes: []string{"INTERN", "FULL_TIME"},
		},
	)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(got) != 2 || got[0].ExternalID != "jobs/1" || got[1].ExternalID != "jobs/2" {
		t.Fatalf("unexpected jobs: %+v", got)
	}
	if got[0].Source != "jobdiscovery" || got[0].Query != "analyst" {
		t.Errorf("unexpected source/query: %+v", got[0])
	}
	if got[0].ID != jobID("jobs/1") {
		t.Error("job id should be derived from the external id")
	}

	req := fc.got
	if req.Metadata != jobs.NewRequestMetadata("u", "s", "www.google.com") {
		t.Errorf("metadata = %+v", req.Metadata)
	}
	if req.Mode != jobs.SearchModeJobSearch {
		t.Errorf("mode = %q", req.Mode)
	}
	if len(req.Query.LocationFilters) != 1 || *req.Query.LocationFilters[0].RadiusMiles != 0.5 {
		t.Errorf("location filters = %+v", req.Query.LocationFilters)
	}
	if len(req.Query.EmploymentTypes) != 2 {
		t.Errorf("employment types = %v", req.Query.EmploymentTypes)
	}
}

func TestProviderRejectsUnknownEmploymentType(t *testing.T) {
	fc := &fakeClient{resp: &jobs.SearchResponse{}}
	p, _ := NewProvider(fc, "")

	_, err := p.Search(context.Background(), domain.Session{}, "analyst", domain.JobSearchFilters{
		EmploymentTypes: []string{"WHENEVER"},
	})
	if err == nil {
		t.Fatal("expected error for unknown employment type")
	}
}

func TestProviderPropagatesClientError(t *testing.T) {
	cause := &jobs.TransportError{Op: "execute", Err: errors.New("boom")}
	p, _ := NewProvider(&fakeClient{err: cause}, "")

	_, err := p.Search(context.Background(), domain.Session{}, "analyst", domain.JobSearchFilters{})
	var te *jobs.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("want *jobs.TransportError, got %v", err)
	}
}

func TestNewProviderRequiresClient(t *testing.T) {
	if _, err := NewProvider(nil, ""); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestProviderLeavesUnnamedMatchWithoutID(t *testing.T) {
	fc := &fakeClient{resp: &jobs.SearchResponse{Matches: []jobs.MatchedJob{
		{Title: "Analyst", Summary: "no name returned"},
	}}}
	p, _ := NewProvider(fc, "")

	got, err := p.Search(context.Background(), domain.Session{}, "analyst", domain.JobSearchFilters{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != uuid.Nil || got[0].ExternalID != "" {
		t.Errorf("unexpected job: %+v", got)
	}
}
