package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// SaveRun persists a run and its patterns in one transaction. The run's
// RunID and CreatedAt are assigned here; the generated ID is returned.
func (s *Store) SaveRun(run *types.Run, patterns []types.StoredPattern) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating run ID: %w", err)
	}
	run.RunID = id.String()
	run.CreatedAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, source, min_support, tx_count, created_at) VALUES (?, ?, ?, ?, ?)",
		run.RunID, run.Source, run.MinSupport, run.TxCount, run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for _, p := range patterns {
		encoded, err := json.Marshal(p.Pattern)
		if err != nil {
			return "", fmt.Errorf("encoding pattern: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO patterns (run_id, level, pattern, support) VALUES (?, ?, ?, ?)",
			run.RunID, p.Level, string(encoded), p.Support,
		)
		if err != nil {
			return "", fmt.Errorf("inserting pattern: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return run.RunID, nil
}

// GetRun retrieves a run by ID. Returns ErrRunNotFound if no run has the
// given ID.
func (s *Store) GetRun(id string) (*types.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.guard(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT run_id, source, min_support, tx_count, created_at FROM runs WHERE run_id = ?",
		id,
	)
	run, err := hydrateRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrRunNotFound
		}
		return nil, fmt.Errorf("getting run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns all stored runs, most recent first.
func (s *Store) ListRuns() ([]*types.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		// run_id is a UUID v7, so it breaks created_at ties in insertion order.
		"SELECT run_id, source, min_support, tx_count, created_at FROM runs ORDER BY created_at DESC, run_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*types.Run
	for rows.Next() {
		run, err := hydrateRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Patterns returns the stored patterns of a run ordered by level then
// insertion order. Returns ErrRunNotFound if the run does not exist.
func (s *Store) Patterns(runID string) ([]types.StoredPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.guard(); err != nil {
		return nil, err
	}

	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE run_id = ?", runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking run %s: %w", runID, err)
	}
	if exists == 0 {
		return nil, types.ErrRunNotFound
	}

	rows, err := s.db.Query(
		"SELECT level, pattern, support FROM patterns WHERE run_id = ? ORDER BY level, rowid",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying patterns for run %s: %w", runID, err)
	}
	defer rows.Close()

	var patterns []types.StoredPattern
	for rows.Next() {
		var p types.StoredPattern
		var encoded string
		if err := rows.Scan(&p.Level, &encoded, &p.Support); err != nil {
			return nil, fmt.Errorf("scanning pattern: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &p.Pattern); err != nil {
			return nil, fmt.Errorf("decoding pattern: %w", err)
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateRun scans one runs row into a Run.
func hydrateRun(row scanner) (*types.Run, error) {
	var run types.Run
	var createdAt string
	if err := row.Scan(&run.RunID, &run.Source, &run.MinSupport, &run.TxCount, &createdAt); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	run.CreatedAt = parsed
	return &run, nil
}
