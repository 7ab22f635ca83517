// Package sqlite implements the SQLite-backed run store. The store keeps a
// history of mining runs and their frequent patterns so results can be
// inspected after the fact.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "seqmine.db"

// Store persists mining runs in a SQLite database under the configured
// data directory. A Store must be opened before use and closed after.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
}

// NewStore creates an unopened Store; call Open with a Config to
// initialize it.
func NewStore() *Store {
	return &Store{}
}

// Open creates the data directory if needed, opens the database, and
// applies the schema. Returns ErrStoreOpen if the store is already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrStoreOpen
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database handle. Returns ErrStoreClosed if the store
// was never opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	err := s.db.Close()
	s.db = nil
	s.open = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// guard returns ErrStoreClosed unless the store is open. Callers must hold
// at least a read lock.
func (s *Store) guard() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}
