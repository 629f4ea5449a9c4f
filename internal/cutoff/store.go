package cutoff

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotLoaded is returned by Snapshot before the first successful load.
var ErrNotLoaded = errors.New("cutoff dataset not loaded")

// Loader produces a full dataset from somewhere. Implemented by
// source.Chain; the returned string names the source that succeeded.
type Loader interface {
	Load(ctx context.Context) ([]Record, string, error)
}

// Snapshot is one immutable generation of the dataset. A new Snapshot is
// created on every successful load; the Records slice is never mutated.
type Snapshot struct {
	ID       uuid.UUID
	Records  []Record
	Source   string
	LoadedAt time.Time
}

// Store holds the current dataset snapshot for the session. Readers are
// concurrent (every HTTP request), writers are rare (initial load and
// explicit reloads), so a RWMutex guards the swap.
type Store struct {
	mu      sync.RWMutex
	snap    *Snapshot
	loadErr error
}

// NewStore creates an empty Store. Snapshot returns ErrNotLoaded until the
// first successful Load.
func NewStore() *Store {
	return &Store{loadErr: ErrNotLoaded}
}

// Load runs the loader and, on success, atomically swaps in a new snapshot.
// On failure the error is recorded but a previously loaded snapshot is kept:
// the dataset that was complete and valid before the reload still is.
// No partial dataset is ever installed.
func (s *Store) Load(ctx context.Context, l Loader) error {
	records, sourceName, err := l.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		return err
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		Records:  records,
		Source:   sourceName,
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	s.snap = snap
	s.loadErr = nil
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current dataset generation, or the most recent load
// error when no snapshot has ever been installed.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		if s.loadErr != nil {
			return nil, s.loadErr
		}
		return nil, ErrNotLoaded
	}
	return s.snap, nil
}

// Ready reports whether a dataset snapshot is available to serve.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}

// LastError returns the most recent load failure, or nil if the last load
// succeeded. A non-nil result can coexist with a usable snapshot when a
// reload failed after an earlier success.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}
