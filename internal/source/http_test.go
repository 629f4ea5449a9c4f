package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleDataset = `[
	{"Rank": 1, "Percentile": 99.9, "Choice Code": "C1", "Institute Name": "First Institute", "Course Name": "Computer Engineering"},
	{"Rank": 2, "Percentile": 99.5, "Choice Code": "C2", "Institute Name": "Second Institute", "Course Name": "Mechanical Engineering"}
]`

func TestHTTPSource_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDataset))
	}))
	defer ts.Close()

	src := NewHTTPSource("test", ts.URL, time.Second)
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].InstituteName != "First Institute" {
		t.Errorf("InstituteName = %q, want %q", records[0].InstituteName, "First Institute")
	}
}

func TestHTTPSource_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer ts.Close()

	if _, err := NewHTTPSource("test", ts.URL, time.Second).Load(context.Background()); err == nil {
		t.Error("Load() expected error for 502 response, got nil")
	}
}

func TestHTTPSource_NonArrayPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "not a dataset"}`))
	}))
	defer ts.Close()

	if _, err := NewHTTPSource("test", ts.URL, time.Second).Load(context.Background()); err == nil {
		t.Error("Load() expected error for non-array payload, got nil")
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	// Grab an address that refuses connections.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	if _, err := NewHTTPSource("test", ts.URL, time.Second).Load(context.Background()); err == nil {
		t.Error("Load() expected error for unreachable endpoint, got nil")
	}
}

func TestFileSource_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutoffs.json")
	if err := os.WriteFile(path, []byte(sampleDataset), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path)
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
