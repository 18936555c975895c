// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists parse runs in a local SQLite database so past
// conversions can be listed and inspected.
package catalog

import (
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfstruct/pkg/types"
)

const dbFile = "pdfstruct.db"

// Store manages the run catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.Dir/pdfstruct.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if cfg.Dir == "" {
		cfg.Dir = "catalog"
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			output_path TEXT,
			format TEXT,
			pages INTEGER,
			paragraphs INTEGER,
			sections INTEGER,
			sub_sections INTEGER,
			tables_found INTEGER,
			charts INTEGER,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunID derives a stable run identifier from the source path and its
// modification time: re-parsing an unchanged file updates its existing
// catalog row instead of accumulating duplicates.
func RunID(source string, modTime time.Time) string {
	sum := sha256.Sum256([]byte(source + "|" + modTime.UTC().Format(time.RFC3339Nano)))
	return fmt.Sprintf("%x", sum[:6])
}

// Record inserts or replaces a run.
func (s *Store) Record(run types.Run) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO runs
			(id, source, output_path, format, pages, paragraphs, sections, sub_sections, tables_found, charts, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.OutputPath, run.Format,
		run.Summary.Pages, run.Summary.Paragraphs, run.Summary.Sections,
		run.Summary.SubSections, run.Summary.Tables, run.Summary.Charts,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first, capped by the store's
// max-results setting.
func (s *Store) List() ([]types.Run, error) {
	rows, err := s.db.Query(
		`SELECT id, source, output_path, format, pages, paragraphs, sections, sub_sections, tables_found, charts, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns a single run by ID.
func (s *Store) Get(id string) (types.Run, error) {
	row := s.db.QueryRow(
		`SELECT id, source, output_path, format, pages, paragraphs, sections, sub_sections, tables_found, charts, created_at
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, fmt.Errorf("run %s not found", id)
	}
	return run, err
}

// Purge removes all recorded runs and returns the number deleted.
func (s *Store) Purge() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("purging runs: %w", err)
	}
	return res.RowsAffected()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (types.Run, error) {
	var run types.Run
	var createdAt string
	err := sc.Scan(
		&run.ID, &run.Source, &run.OutputPath, &run.Format,
		&run.Summary.Pages, &run.Summary.Paragraphs, &run.Summary.Sections,
		&run.Summary.SubSections, &run.Summary.Tables, &run.Summary.Charts,
		&createdAt,
	)
	if err != nil {
		return types.Run{}, err
	}
	if ts, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		run.CreatedAt = ts
	}
	return run, nil
}
