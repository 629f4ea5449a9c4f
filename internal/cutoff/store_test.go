package cutoff

import (
	"context"
	"errors"
	"testing"
)

// stubLoader returns a canned dataset or error, counting calls.
type stubLoader struct {
	records []Record
	err     error
	calls   int
}

func (l *stubLoader) Load(_ context.Context) ([]Record, string, error) {
	l.calls++
	if l.err != nil {
		return nil, "", l.err
	}
	return l.records, "stub", nil
}

func TestStore_SnapshotBeforeLoad(t *testing.T) {
	store := NewStore()

	if store.Ready() {
		t.Error("Ready() = true before any load")
	}
	if _, err := store.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Snapshot() error = %v, want ErrNotLoaded", err)
	}
}

func TestStore_LoadSuccess(t *testing.T) {
	store := NewStore()
	loader := &stubLoader{records: []Record{{Rank: 1}, {Rank: 2}}}

	if err := store.Load(context.Background(), loader); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snap.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(snap.Records))
	}
	if snap.Source != "stub" {
		t.Errorf("Source = %q, want %q", snap.Source, "stub")
	}
	if snap.ID.String() == "" || snap.LoadedAt.IsZero() {
		t.Error("snapshot missing ID or load time")
	}
	if store.LastError() != nil {
		t.Errorf("LastError() = %v, want nil", store.LastError())
	}
}

func TestStore_LoadFailure(t *testing.T) {
	store := NewStore()
	loadErr := errors.New("all sources down")

	if err := store.Load(context.Background(), &stubLoader{err: loadErr}); !errors.Is(err, loadErr) {
		t.Fatalf("Load() error = %v, want %v", err, loadErr)
	}

	if store.Ready() {
		t.Error("Ready() = true after failed initial load")
	}
	if _, err := store.Snapshot(); !errors.Is(err, loadErr) {
		t.Errorf("Snapshot() error = %v, want the load error", err)
	}
}

// A failed reload keeps serving the previous complete snapshot; only the
// error state changes.
func TestStore_FailedReloadKeepsSnapshot(t *testing.T) {
	store := NewStore()
	if err := store.Load(context.Background(), &stubLoader{records: []Record{{Rank: 1}}}); err != nil {
		t.Fatalf("initial Load() error = %v", err)
	}
	first, _ := store.Snapshot()

	reloadErr := errors.New("upstream offline")
	if err := store.Load(context.Background(), &stubLoader{err: reloadErr}); err == nil {
		t.Fatal("reload Load() expected error, got nil")
	}

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v, want previous snapshot to survive", err)
	}
	if snap.ID != first.ID {
		t.Errorf("snapshot ID changed across failed reload: %s != %s", snap.ID, first.ID)
	}
	if !errors.Is(store.LastError(), reloadErr) {
		t.Errorf("LastError() = %v, want %v", store.LastError(), reloadErr)
	}
}

// A successful reload swaps in a new generation.
func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	store := NewStore()
	if err := store.Load(context.Background(), &stubLoader{records: []Record{{Rank: 1}}}); err != nil {
		t.Fatalf("initial Load() error = %v", err)
	}
	first, _ := store.Snapshot()

	if err := store.Load(context.Background(), &stubLoader{records: []Record{{Rank: 1}, {Rank: 2}}}); err != nil {
		t.Fatalf("reload Load() error = %v", err)
	}

	snap, _ := store.Snapshot()
	if snap.ID == first.ID {
		t.Error("reload did not produce a new snapshot generation")
	}
	if len(snap.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(snap.Records))
	}
}
