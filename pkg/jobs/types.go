package jobs

import (
	"net/http"
	"time"
)

// EmploymentType is a job employment type understood by the search service
type EmploymentType string

const (
	EmploymentTypeUnspecified    EmploymentType = "EMPLOYMENT_TYPE_UNSPECIFIED"
	EmploymentTypeFullTime       EmploymentType = "FULL_TIME"
	EmploymentTypePartTime       EmploymentType = "PART_TIME"
	EmploymentTypeContractor     EmploymentType = "CONTRACTOR"
	EmploymentTypeTemporary      EmploymentType = "TEMPORARY"
	EmploymentTypeIntern         EmploymentType = "INTERN"
	EmploymentTypeVolunteer      EmploymentType = "VOLUNTEER"
	EmploymentTypePerDiem        EmploymentType = "PER_DIEM"
	EmploymentTypeContractToHire EmploymentType = "CONTRACT_TO_HIRE"
	EmploymentTypeFlyInFlyOut    EmploymentType = "FLY_IN_FLY_OUT"
	EmploymentTypeOther          EmploymentType = "OTHER"
)

// SearchMode selects how the service ranks and filters a search
type SearchMode string

const (
	SearchModeUnspecified       SearchMode = "SEARCH_MODE_UNSPECIFIED"
	SearchModeJobSearch         SearchMode = "JOB_SEARCH"
	SearchModeFeaturedJobSearch SearchMode = "FEATURED_JOB_SEARCH"
	SearchModeEmailAlertSearch  SearchMode = "EMAIL_ALERT_SEARCH"
)

// RequestMetadata identifies the end user and site a search is issued for.
// UserID and SessionID must already be hashed; see NewRequestMetadata.
type RequestMetadata struct {
	UserID    string
	SessionID string
	Domain    string
}

// LocationFilter restricts results to jobs near a named location
type LocationFilter struct {
	Name        string
	RadiusMiles *float64
}

// JobQuery is a keyword search combined with structured filters
type JobQuery struct {
	Keywords        string
	LocationFilters []LocationFilter
	// EmploymentTypes is treated as a set: order and duplicates are ignored
	EmploymentTypes []EmploymentType
}

// SearchRequest describes one call to the search RPC
type SearchRequest struct {
	Metadata RequestMetadata
	Query    JobQuery
	// Mode defaults to SearchModeJobSearch when empty
	Mode SearchMode
}

// SearchResponse holds the jobs matched by a search, in service order
type SearchResponse struct {
	Matches []MatchedJob `json:"matches"`
}

// MatchedJob is a single search result
type MatchedJob struct {
	Title      string `json:"title"`
	Identifier string `json:"identifier"`
	Summary    string `json:"summary"`
}

// HTTPConfig defines HTTPTransport settings
type HTTPConfig struct {
	Endpoint        string
	CredentialsPath string
	CredentialsJSON []byte
	APIKey          string
	Timeout         time.Duration
	// HTTPClient replaces the authenticated client built from credentials
	HTTPClient *http.Client
}

type searchJobsRequest struct {
	RequestMetadata requestMetadata `json:"requestMetadata"`
	Query           jobQuery        `json:"query"`
	Mode            string          `json:"mode"`
}

type requestMetadata struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	Domain    string `json:"domain"`
}

type jobQuery struct {
	Query           string           `json:"query,omitempty"`
	LocationFilters []locationFilter `json:"locationFilters,omitempty"`
	EmploymentTypes []string         `json:"employmentTypes,omitempty"`
}

type locationFilter struct {
	Name            string   `json:"name,omitempty"`
	DistanceInMiles *float64 `json:"distanceInMiles,omitempty"`
}

type searchJobsResponse struct {
	MatchingJobs []matchingJob `json:"matchingJobs"`
	TotalSize    string        `json:"totalSize,omitempty"`
}

type matchingJob struct {
	Job        jobRecord `json:"job"`
	JobSummary string    `json:"jobSummary"`
}

type jobRecord struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
}
