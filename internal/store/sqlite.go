// Package store persists query result snapshots in a local SQLite
// database so graphs and exports can be re-rendered without re-querying.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite snapshot database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a snapshot database at the given path, creating
// parent directories if needed.
func OpenDB(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			mode TEXT NOT NULL,
			terms_json TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS interactions (
			snapshot_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			gene_name TEXT NOT NULL,
			gene_long_name TEXT,
			drug_name TEXT NOT NULL,
			drug_approved INTEGER NOT NULL,
			score REAL NOT NULL,
			attributes_json TEXT,
			sources_json TEXT,
			pmids_json TEXT,
			PRIMARY KEY (snapshot_id, seq)
		);

		CREATE INDEX IF NOT EXISTS idx_interactions_snapshot
			ON interactions(snapshot_id);
	`

	_, err := db.Exec(schema)
	return err
}
