// Package sqlitestore persists the application state document in a local
// SQLite database. The document model is unchanged from the JSON file store;
// SQLite adds crash-safe writes for users who want them.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	schema_version INTEGER NOT NULL,
	payload TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Store is a SQLite-backed domain.StateRepository holding the state as a
// single versioned document row
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at the given path
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", domain.ErrStorageUnavailable, dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", domain.ErrStorageUnavailable, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads and decodes the persisted document row
func (s *Store) Load() (*domain.State, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM app_state WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query state: %v", domain.ErrStorageUnavailable, err)
	}

	var doc domain.StateDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("%w: decode state row: %v", domain.ErrInvalidFormat, err)
	}
	return domain.StateFromDocument(&doc), nil
}

// Save encodes and upserts the full state document
func (s *Store) Save(state *domain.State) error {
	doc := state.Document()
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO app_state (id, schema_version, payload, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		doc.SchemaVersion, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: write state: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
