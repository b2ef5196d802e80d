// Package jsonfile persists the application state as a single JSON document
// on disk, the closest analogue to the browser-local storage the tracker is
// modeled on. Writes are whole-document and immediate; a crash mid-write can
// corrupt the file, which is an accepted risk for a single-user local store
// (startup falls back to the seed dataset).
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
)

// Store is a file-backed domain.StateRepository
type Store struct {
	path string
}

// New creates a Store writing to the given path
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads and decodes the persisted document
func (s *Store) Load() (*domain.State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}

	var doc domain.StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidFormat, s.path, err)
	}
	return domain.StateFromDocument(&doc), nil
}

// Save encodes and writes the full state document
func (s *Store) Save(state *domain.State) error {
	data, err := json.MarshalIndent(state.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", domain.ErrStorageUnavailable, dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return nil
}
