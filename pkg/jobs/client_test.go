package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type stubTransport struct {
	reply   []byte
	err     error
	payload []byte
}

func (s *stubTransport) Execute(_ context.Context, payload []byte) ([]byte, error) {
	s.payload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.reply, nil
}

func testMetadata() RequestMetadata {
	return RequestMetadata{
		UserID:    "HashedUserId",
		SessionID: "HashedSessionID",
		Domain:    "www.google.com",
	}
}

func newTestClient(t *testing.T, tr Transport) *Client {
	t.Helper()
	c, err := NewClient(tr)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresTransport(t *testing.T) {
	if _, err := NewClient(nil); err == nil {
		t.Fatal("expected error for nil transport")
	}
}

func TestSearchPreservesMatchOrder(t *testing.T) {
	tr := &stubTransport{reply: []byte(`{
		"matchingJobs": [
			{"job": {"name": "jobs/2", "jobTitle": "Data Analyst"}, "jobSummary": "second posted"},
			{"job": {"name": "jobs/1", "jobTitle": "Business Analyst"}, "jobSummary": "first posted"}
		]
	}`)}
	c := newTestClient(t, tr)

	resp, err := c.Search(context.Background(), SearchRequest{
		Metadata: testMetadata(),
		Query:    JobQuery{Keywords: "analyst"},
		Mode:     SearchModeJobSearch,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := []MatchedJob{
		{Title: "Data Analyst", Identifier: "jobs/2", Summary: "second posted"},
		{Title: "Business Analyst", Identifier: "jobs/1", Summary: "first posted"},
	}
	if len(resp.Matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(resp.Matches), len(want))
	}
	for i := range want {
		if resp.Matches[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, resp.Matches[i], want[i])
		}
	}
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	for _, body := range []string{`{}`, `{"matchingJobs": []}`, `{"matchingJobs": null}`} {
		c := newTestClient(t, &stubTransport{reply: []byte(body)})

		resp, err := c.Search(context.Background(), SearchRequest{
			Metadata: testMetadata(),
			Query:    JobQuery{Keywords: "nothing matches this"},
		})
		if err != nil {
			t.Fatalf("body %s: unexpected error: %v", body, err)
		}
		if resp == nil || resp.Matches == nil {
			t.Fatalf("body %s: want non-nil empty matches, got %+v", body, resp)
		}
		if len(resp.Matches) != 0 {
			t.Errorf("body %s: got %d matches, want 0", body, len(resp.Matches))
		}
	}
}

func TestSearchMetadataRoundTrip(t *testing.T) {
	tr := &stubTransport{reply: []byte(`{}`)}
	c := newTestClient(t, tr)

	md := NewRequestMetadata("user-42", "session-7", "jobs.example.com")
	if _, err := c.Search(context.Background(), SearchRequest{
		Metadata: md,
		Query:    JobQuery{Keywords: "analyst"},
	}); err != nil {
		t.Fatalf("Search: %v", err)
	}

	var sent searchJobsRequest
	if err := json.Unmarshal(tr.payload, &sent); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	got := RequestMetadata{
		UserID:    sent.RequestMetadata.UserID,
		SessionID: sent.RequestMetadata.SessionID,
		Domain:    sent.RequestMetadata.Domain,
	}
	if got != md {
		t.Errorf("metadata = %+v, want %+v", got, md)
	}
}

func TestSearchDefaultsModeToJobSearch(t *testing.T) {
	tr := &stubTransport{reply: []byte(`{}`)}
	c := newTestClient(t, tr)

	if _, err := c.Search(context.Background(), SearchRequest{Query: JobQuery{Keywords: "analyst"}}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(string(tr.payload), `"mode":"JOB_SEARCH"`) {
		t.Errorf("payload %s does not carry JOB_SEARCH mode", tr.payload)
	}
}

func TestLocationFilterRadiusOmission(t *testing.T) {
	radius := 0.5
	payload, err := encodeRequest(SearchRequest{
		Query: JobQuery{
			Keywords: "Software Engineer",
			LocationFilters: []LocationFilter{
				{Name: "1600 Amphitheatre Parkway, Mountain View, CA", RadiusMiles: &radius},
				{Name: "Sunnyvale, CA"},
			},
		},
	})
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}

	var raw struct {
		Query struct {
			LocationFilters []map[string]any `json:"locationFilters"`
		} `json:"query"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	filters := raw.Query.LocationFilters
	if len(filters) != 2 {
		t.Fatalf("got %d location filters, want 2", len(filters))
	}
	if got, ok := filters[0]["distanceInMiles"]; !ok || got != 0.5 {
		t.Errorf("first filter distanceInMiles = %v (present=%v), want 0.5", got, ok)
	}
	if _, ok := filters[1]["distanceInMiles"]; ok {
		t.Errorf("second filter should omit distanceInMiles, got %v", filters[1])
	}
	if filters[1]["name"] != "Sunnyvale, CA" {
		t.Errorf("second filter name = %v", filters[1]["name"])
	}
}

func TestEmploymentTypesSerializeAsSet(t *testing.T) {
	cases := []struct {
		name  string
		types []EmploymentType
	}{
		{"declared order", []EmploymentType{EmploymentTypeFullTime, EmploymentTypeIntern}},
		{"reversed", []EmploymentType{EmploymentTypeIntern, EmploymentTypeFullTime}},
		{"duplicates", []EmploymentType{EmploymentTypeIntern, EmploymentTypeFullTime, EmploymentTypeIntern, EmploymentTypeFullTime}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := employmentTypeSet(tc.types)
			want := []string{"FULL_TIME", "INTERN"}
			if strings.Join(got, ",") != strings.Join(want, ",") {
				t.Errorf("employmentTypeSet(%v) = %v, want %v", tc.types, got, want)
			}
		})
	}
}

func TestEmploymentTypesEmptyIsOmitted(t *testing.T) {
	payload, err := encodeRequest(SearchRequest{Query: JobQuery{Keywords: "analyst"}})
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	if strings.Contains(string(payload), "employmentTypes") {
		t.Errorf("payload %s should omit employmentTypes", payload)
	}
}

func TestEmploymentTypesUnknownSortLast(t *testing.T) {
	got := employmentTypeSet([]EmploymentType{"ZZZ_CUSTOM", EmploymentTypeOther, "AAA_CUSTOM", EmploymentTypePartTime})
	want := "PART_TIME,OTHER,AAA_CUSTOM,ZZZ_CUSTOM"
	if strings.Join(got, ",") != want {
		t.Errorf("got %v, want %s", got, want)
	}
}

func TestSearchPropagatesTransportFailure(t *testing.T) {
	connErr := errors.New("dial tcp: connection refused")
	c := newTestClient(t, &stubTransport{err: connErr})

	resp, err := c.Search(context.Background(), SearchRequest{Query: JobQuery{Keywords: "analyst"}})
	if resp != nil {
		t.Errorf("want nil response on failure, got %+v", resp)
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("want *TransportError, got %T (%v)", err, err)
	}
	if !errors.Is(err, connErr) {
		t.Errorf("underlying cause lost: %v", err)
	}
}

func TestSearchMalformedResponse(t *testing.T) {
	for _, body := range []string{``, `not json`, `{"matchingJobs": "oops"}`} {
		c := newTestClient(t, &stubTransport{reply: []byte(body)})

		resp, err := c.Search(context.Background(), SearchRequest{Query: JobQuery{Keywords: "analyst"}})
		if resp != nil {
			t.Errorf("body %q: want nil response, got %+v", body, resp)
		}
		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("body %q: want *TransportError, got %T (%v)", body, err, err)
		}
		if te.Op != "decode response" {
			t.Errorf("body %q: op = %q, want decode response", body, te.Op)
		}
	}
}

func TestParseEmploymentType(t *testing.T) {
	got, err := ParseEmploymentType("INTERN")
	if err != nil || got != EmploymentTypeIntern {
		t.Errorf("ParseEmploymentType(INTERN) = %q, %v", got, err)
	}
	if _, err := ParseEmploymentType("SOMETIMES"); err == nil {
		t.Error("expected error for unknown employment type")
	}
}
