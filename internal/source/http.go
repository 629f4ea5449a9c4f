package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/M4yank09/AI-cet/internal/cutoff"
)

// maxBodySize caps how much of a response body is read when parsing a
// dataset (32MB). The dataset is low tens of thousands of rows; anything
// larger is a broken or hostile endpoint.
const maxBodySize = 32 * 1024 * 1024

// HTTPSource fetches the dataset from a single URL.
type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP candidate with a per-attempt timeout.
// A zero timeout disables it (the chain's context still applies).
func NewHTTPSource(name, url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Name implements Source.
func (s *HTTPSource) Name() string { return s.name }

// Load issues one GET and parses the body as a record array. Non-2xx
// statuses, transport errors, and non-array payloads all fail the attempt.
func (s *HTTPSource) Load(ctx context.Context) ([]cutoff.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", s.url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return cutoff.DecodeRecords(body)
}
