package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Transport sends a serialized search request and returns the raw reply.
// Authentication and connection management belong to the transport.
type Transport interface {
	Execute(ctx context.Context, payload []byte) ([]byte, error)
}

// Client issues job searches through a Transport
type Client struct {
	transport Transport
}

// NewClient instantiates a search client on top of transport
func NewClient(transport Transport) (*Client, error) {
	if transport == nil {
		return nil, errors.New("jobs: transport is required")
	}
	return &Client{transport: transport}, nil
}

// Search runs a single search. On failure the response is nil and the error
// is a *TransportError; a search with no matches returns an empty response.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if c == nil || c.transport == nil {
		return nil, &TransportError{Op: "search", Err: errors.New("client is nil")}
	}

	payload, err := encodeRequest(req)
	if err != nil {
		return nil, &TransportError{Op: "encode request", Err: err}
	}

	raw, err := c.transport.Execute(ctx, payload)
	if err != nil {
		return nil, &TransportError{Op: "execute", Err: err}
	}

	resp, err := decodeResponse(raw)
	if err != nil {
		return nil, &TransportError{Op: "decode response", Err: err}
	}

	return resp, nil
}

func encodeRequest(req SearchRequest) ([]byte, error) {
	mode := req.Mode
	if mode == "" {
		mode = SearchModeJobSearch
	}

	wire := searchJobsRequest{
		RequestMetadata: requestMetadata{
			UserID:    req.Metadata.UserID,
			SessionID: req.Metadata.SessionID,
			Domain:    req.Metadata.Domain,
		},
		Query: jobQuery{
			Query:           req.Query.Keywords,
			EmploymentTypes: employmentTypeSet(req.Query.EmploymentTypes),
		},
		Mode: string(mode),
	}

	for _, lf := range req.Query.LocationFilters {
		wire.Query.LocationFilters = append(wire.Query.LocationFilters, locationFilter{
			Name:            lf.Name,
			DistanceInMiles: lf.RadiusMiles,
		})
	}

	return json.Marshal(wire)
}

func decodeResponse(raw []byte) (*SearchResponse, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty response body")
	}

	var payload searchJobsResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	matches := make([]MatchedJob, 0, len(payload.MatchingJobs))
	for _, m := range payload.MatchingJobs {
		matches = append(matches, MatchedJob{
			Title:      m.Job.JobTitle,
			Identifier: m.Job.Name,
			Summary:    m.JobSummary,
		})
	}

	return &SearchResponse{Matches: matches}, nil
}

var employmentTypeRank = map[EmploymentType]int{
	EmploymentTypeUnspecified:    0,
	EmploymentTypeFullTime:       1,
	EmploymentTypePartTime:       2,
	EmploymentTypeContractor:     3,
	EmploymentTypeTemporary:      4,
	EmploymentTypeIntern:         5,
	EmploymentTypeVolunteer:      6,
	EmploymentTypePerDiem:        7,
	EmploymentTypeContractToHire: 8,
	EmploymentTypeFlyInFlyOut:    9,
	EmploymentTypeOther:          10,
}

// employmentTypeSet dedups types and orders them by enum declaration,
// unknown values last in lexical order
func employmentTypeSet(types []EmploymentType) []string {
	if len(types) == 0 {
		return nil
	}

	seen := make(map[EmploymentType]struct{}, len(types))
	uniq := make([]EmploymentType, 0, len(types))
	for _, t := range types {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}

	sort.Slice(uniq, func(i, j int) bool {
		ri, iok := employmentTypeRank[uniq[i]]
		rj, jok := employmentTypeRank[uniq[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return uniq[i] < uniq[j]
		}
	})

	out := make([]string, 0, len(uniq))
	for _, t := range uniq {
		out = append(out, string(t))
	}
	return out
}

// ParseEmploymentType validates a raw employment type name
func ParseEmploymentType(s string) (EmploymentType, error) {
	t := EmploymentType(s)
	if _, ok := employmentTypeRank[t]; !ok {
		return "", fmt.Errorf("jobs: unknown employment type %q", s)
	}
	return t, nil
}
