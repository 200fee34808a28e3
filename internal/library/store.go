// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library records rendered guides in a local SQLite index so
// past runs can be listed and searched. Only final artifacts land
// here; intermediate pipeline state is never persisted.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/explain-engine/pkg/types"
)

const dbFile = "guides.db"

// Store manages the guide library SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the library database at
// libraryDir/guides.db, creating the schema if needed.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LibraryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LibraryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
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
		`CREATE TABLE IF NOT EXISTS guides (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL,
			title TEXT,
			category TEXT NOT NULL,
			tier TEXT NOT NULL,
			output_path TEXT NOT NULL,
			explanation TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_guides_tier ON guides(tier)`,
		`CREATE INDEX IF NOT EXISTS idx_guides_category ON guides(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='guides_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE guides_fts USING fts5(explanation, content=guides, content_rowid=rowid)`,
			`CREATE TRIGGER guides_ai AFTER INSERT ON guides BEGIN
				INSERT INTO guides_fts(rowid, explanation) VALUES (new.rowid, new.explanation);
			END`,
			`CREATE TRIGGER guides_ad AFTER DELETE ON guides BEGIN
				INSERT INTO guides_fts(guides_fts, rowid, explanation) VALUES('delete', old.rowid, old.explanation);
			END`,
			`CREATE TRIGGER guides_au AFTER UPDATE ON guides BEGIN
				INSERT INTO guides_fts(guides_fts, rowid, explanation) VALUES('delete', old.rowid, old.explanation);
				INSERT INTO guides_fts(rowid, explanation) VALUES (new.rowid, new.explanation);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record stores one rendered guide and its explanation text.
func (s *Store) Record(ctx context.Context, g types.Guide, explanation string) error {
	createdAt := g.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO guides (source_path, title, category, tier, output_path, explanation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.SourcePath, g.Title, string(g.Category), string(g.Tier), g.OutputPath, explanation,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording guide: %w", err)
	}
	return nil
}

// List returns the most recently recorded guides, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]types.Guide, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, title, category, tier, output_path, created_at
		 FROM guides ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing guides: %w", err)
	}
	defer rows.Close()

	return scanGuides(rows)
}

// SearchResult is a guide matched by full-text search, with a snippet
// of the matching explanation text.
type SearchResult struct {
	types.Guide
	Snippet string `json:"snippet" yaml:"snippet"`
}

// Search runs an FTS5 query over recorded explanation text, ranked by
// relevance.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("search query required")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT g.source_path, g.title, g.category, g.tier, g.output_path, g.created_at,
			snippet(guides_fts, 0, '[', ']', '...', 12)
		 FROM guides_fts
		 JOIN guides g ON g.rowid = guides_fts.rowid
		 WHERE guides_fts MATCH ?
		 ORDER BY guides_fts.rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching guides: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			r         SearchResult
			category  string
			tier      string
			createdAt string
		)
		if err := rows.Scan(&r.SourcePath, &r.Title, &category, &tier, &r.OutputPath, &createdAt, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		r.Category = types.Category(category)
		r.Tier = types.Tier(tier)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		results = append(results, r)
	}
	return results, rows.Err()
}

func scanGuides(rows *sql.Rows) ([]types.Guide, error) {
	var guides []types.Guide
	for rows.Next() {
		var (
			g         types.Guide
			category  string
			tier      string
			createdAt string
		)
		if err := rows.Scan(&g.SourcePath, &g.Title, &category, &tier, &g.OutputPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning guide: %w", err)
		}
		g.Category = types.Category(category)
		g.Tier = types.Tier(tier)
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		guides = append(guides, g)
	}
	return guides, rows.Err()
}
