package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a stored job
type JobID = uuid.UUID

// Session carries the raw end-user identifiers a search is made for.
// Providers hash them before they leave the process.
type Session struct {
	UserID    string
	SessionID string
	Domain    string
}

// Location is a named place with an optional search radius
type Location struct {
	Name        string
	RadiusMiles *float64
}

// Job is the normalized matched job entity
type Job struct {
	ID         JobID
	Title      string
	Summary    string
	Source     string
	ExternalID string
	Query      string
	FetchedAt  time.Time
}

// JobSearchFilters describe allowed job query filters
type JobSearchFilters struct {
	Locations       []Location
	EmploymentTypes []string
}

// JobSummary is the response-friendly job view
type JobSummary struct {
	ID         JobID  `json:"id"`
	Title      string `json:"title"`
	ExternalID string `json:"external_id"`
	Summary    string `json:"summary"`
	Source     string `json:"source"`
}

// JobSearchResult wraps job search output
type JobSearchResult struct {
	Jobs        []JobSummary `json:"jobs"`
	FetchedAt   time.Time    `json:"fetched_at"`
	SourceCount int          `json:"source_count"`
}
