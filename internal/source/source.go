// Package source implements the data source adapter: an ordered chain of
// candidate dataset sources tried sequentially until one yields a valid
// record array.
//
// Candidates are deliberately tried one at a time, in priority order, not
// raced in parallel. A candidate fails on a transport error, a non-success
// status, or a payload that is not a JSON array of records; failure simply
// advances the chain. Only when every candidate has failed does the chain
// return an error, aggregating the per-candidate failures.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/M4yank09/AI-cet/internal/cutoff"
	"github.com/M4yank09/AI-cet/internal/metrics"
)

// ErrExhausted marks a load failure where every candidate source failed.
// Wrap-checked with errors.Is; the wrapped message lists each candidate's
// failure for the user-facing error.
var ErrExhausted = errors.New("all data sources failed")

// Source is one candidate provider of the full cutoff dataset.
type Source interface {
	// Name identifies the source in logs, metrics, and errors.
	Name() string

	// Load fetches and parses the complete dataset. It returns an error
	// for anything short of a valid record array; partial data is never
	// returned.
	Load(ctx context.Context) ([]cutoff.Record, error)
}

// Chain tries sources in order, stopping at the first success.
type Chain struct {
	sources []Source
	metrics *metrics.Metrics
}

// NewChain builds a chain over the given sources in priority order.
// Metrics may be nil in tests.
func NewChain(m *metrics.Metrics, sources ...Source) *Chain {
	return &Chain{sources: sources, metrics: m}
}

// Load runs the fallback chain. It returns the records and the name of the
// winning source, or an ErrExhausted-wrapped error listing every failure.
func (c *Chain) Load(ctx context.Context) ([]cutoff.Record, string, error) {
	if len(c.sources) == 0 {
		return nil, "", fmt.Errorf("%w: no sources configured", ErrExhausted)
	}

	var failures []string
	for _, src := range c.sources {
		start := time.Now()
		records, err := src.Load(ctx)
		if err != nil {
			c.observe(src.Name(), "error")
			slog.Warn("data source failed, advancing to next candidate",
				"source", src.Name(),
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			failures = append(failures, fmt.Sprintf("%s: %v", src.Name(), err))
			continue
		}

		c.observe(src.Name(), "ok")
		slog.Info("dataset loaded",
			"source", src.Name(),
			"records", len(records),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return records, src.Name(), nil
	}

	return nil, "", fmt.Errorf("%w: %s", ErrExhausted, strings.Join(failures, "; "))
}

func (c *Chain) observe(name, outcome string) {
	if c.metrics != nil {
		c.metrics.SourceAttempt(name, outcome)
	}
}
