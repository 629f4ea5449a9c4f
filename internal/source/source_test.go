package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/M4yank09/AI-cet/internal/cutoff"
)

// fakeSource is a scriptable chain candidate.
type fakeSource struct {
	name    string
	records []cutoff.Record
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Load(_ context.Context) ([]cutoff.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func TestChain_FirstSuccessWins(t *testing.T) {
	first := &fakeSource{name: "primary", records: []cutoff.Record{{Rank: 1}}}
	second := &fakeSource{name: "fallback", records: []cutoff.Record{{Rank: 2}}}
	chain := NewChain(nil, first, second)

	records, name, err := chain.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if name != "primary" {
		t.Errorf("winning source = %q, want %q", name, "primary")
	}
	if len(records) != 1 || records[0].Rank != 1 {
		t.Errorf("records = %+v, want primary's dataset", records)
	}
	if second.calls != 0 {
		t.Errorf("fallback was called %d times, want 0 (short-circuit)", second.calls)
	}
}

func TestChain_AdvancesPastFailures(t *testing.T) {
	first := &fakeSource{name: "proxy", err: errors.New("connection refused")}
	second := &fakeSource{name: "mirror", err: errors.New("status 503")}
	third := &fakeSource{name: "archive", records: []cutoff.Record{{Rank: 42}}}
	chain := NewChain(nil, first, second, third)

	records, name, err := chain.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if name != "archive" {
		t.Errorf("winning source = %q, want %q", name, "archive")
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 1 {
		t.Errorf("call counts = %d/%d/%d, want 1/1/1 (strict order, no retries)",
			first.calls, second.calls, third.calls)
	}
}

func TestChain_AllFailAggregatesErrors(t *testing.T) {
	chain := NewChain(nil,
		&fakeSource{name: "proxy", err: errors.New("connection refused")},
		&fakeSource{name: "mirror", err: errors.New("unexpected status 502 Bad Gateway")},
	)

	_, _, err := chain.Load(context.Background())
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("error %v does not wrap ErrExhausted", err)
	}

	msg := err.Error()
	for _, want := range []string{"proxy", "connection refused", "mirror", "502"} {
		if !strings.Contains(msg, want) {
			t.Errorf("aggregated error %q missing %q", msg, want)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	_, _, err := NewChain(nil).Load(context.Background())
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Load() error = %v, want ErrExhausted", err)
	}
}
