package jobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const (
	defaultEndpoint = "https://jobs.googleapis.com/v2/jobs:search"
	defaultTimeout  = 30 * time.Second
	jobsScope       = "https://www.googleapis.com/auth/jobs"
	maxErrorBody    = 4096
)

// HTTPTransport posts search requests to the job discovery REST endpoint
type HTTPTransport struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds a transport authenticated with the configured
// credentials. An explicit HTTPClient is used as is.
func NewHTTPTransport(ctx context.Context, cfg HTTPConfig) (*HTTPTransport, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		opts, err := clientOptions(cfg)
		if err != nil {
			return nil, err
		}

		httpClient, _, err = htransport.NewClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("jobs: create authenticated client: %w", err)
		}
	}

	return &HTTPTransport{
		endpoint:   endpoint,
		timeout:    timeout,
		httpClient: httpClient,
	}, nil
}

func clientOptions(cfg HTTPConfig) ([]option.ClientOption, error) {
	opts := []option.ClientOption{option.WithScopes(jobsScope)}

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		return nil, errors.New("jobs: credentials path, credentials JSON or API key is required")
	}

	return opts, nil
}

// Execute posts payload and returns the response body
func (t *HTTPTransport) Execute(ctx context.Context, payload []byte) ([]byte, error) {
	if t == nil || t.httpClient == nil {
		return nil, errors.New("transport is nil")
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}
