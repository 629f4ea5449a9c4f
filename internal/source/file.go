package source

import (
	"context"
	"fmt"
	"os"

	"github.com/M4yank09/AI-cet/internal/cutoff"
)

// FileSource reads the dataset from a local JSON file. Deployments that
// ship the dataset alongside the binary put this first in the chain so the
// network candidates are only consulted when the local copy is absent.
type FileSource struct {
	path string
}

// NewFileSource creates a file candidate for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + s.path }

// Load reads and parses the file as a record array.
func (s *FileSource) Load(_ context.Context) ([]cutoff.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return cutoff.DecodeRecords(data)
}
