package neo4j

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/job-discovery/internal/domain"
	"github.com/honeycarbs/job-discovery/internal/domain/job"

	pkgneo4j "github.com/honeycarbs/job-discovery/pkg/neo4j"
)

// Ensure JobRepository implements job.Repository
var _ job.Repository = (*JobRepository)(nil)

// JobRepository implements job.Repository with Neo4j
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
	}
}

const upsertJobsQuery = `
	UNWIND $jobs AS job
	MERGE (j:Job {source: job.source, externalId: job.externalId})
	SET j.id = job.id,
	    j.title = job.title,
	    j.summary = job.summary,
	    j.fetchedAt = datetime({epochMillis: job.fetchedAt})
	WITH j, job
	WHERE job.query <> ""
	MERGE (q:Query {keywords: job.query})
	MERGE (q)-[m:MATCHED]->(j)
	SET m.lastSeenAt = datetime({epochMillis: job.fetchedAt})
`

// UpsertJobs merges matched jobs and links them to the query that found them
func (r *JobRepository) UpsertJobs(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	jobsData := make([]map[string]interface{}, 0, len(jobs))
	for _, j := range jobs {
		jobsData = append(jobsData, map[string]interface{}{
			"id":         j.ID.String(),
			"title":      j.Title,
			"summary":    j.Summary,
			"source":     j.Source,
			"externalId": j.ExternalID,
			"query":      j.Query,
			"fetchedAt":  j.FetchedAt.UnixMilli(),
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, upsertJobsQuery, map[string]interface{}{"jobs": jobsData})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	return err
}

const findJobsQuery = `
	MATCH (j:Job)
	WHERE j.id IN $ids
	OPTIONAL MATCH (q:Query)-[:MATCHED]->(j)
	RETURN j, collect(q.keywords)[0] AS query
`

// FindByIDs loads jobs by ID
func (r *JobRepository) FindByIDs(ctx context.Context, ids []domain.JobID) ([]domain.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, findJobsQuery, map[string]interface{}{"ids": idStrings})
		if err != nil {
			return nil, err
		}
		return records.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}

	records := result.([]*neo4j.Record)
	jobs := make([]domain.Job, 0, len(records))

	for _, record := range records {
		j, ok := recordToJob(record)
		if !ok {
			continue
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

func recordToJob(record *neo4j.Record) (domain.Job, bool) {
	jobVal, ok := record.Get("j")
	if !ok {
		return domain.Job{}, false
	}
	jobNode, ok := jobVal.(neo4j.Node)
	if !ok {
		return domain.Job{}, false
	}

	props := jobNode.Props
	jobID, err := uuid.Parse(stringProp(props, "id"))
	if err != nil {
		return domain.Job{}, false
	}

	var fetchedAt time.Time
	switch dt := props["fetchedAt"].(type) {
	case time.Time:
		fetchedAt = dt
	case neo4j.LocalDateTime:
		fetchedAt = dt.Time()
	}

	var query string
	if q, ok := record.Get("query"); ok {
		query, _ = q.(string)
	}

	return domain.Job{
		ID:         jobID,
		Title:      stringProp(props, "title"),
		Summary:    stringProp(props, "summary"),
		Source:     stringProp(props, "source"),
		ExternalID: stringProp(props, "externalId"),
		Query:      query,
		FetchedAt:  fetchedAt,
	}, true
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}
