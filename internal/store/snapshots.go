package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
)

// Snapshot describes one saved interaction query.
type Snapshot struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Mode      string    `json:"mode"`
	Terms     []string  `json:"terms"`
}

// SaveInteractions stores an interaction result set and returns the new
// snapshot record.
func (d *DB) SaveInteractions(mode dgidb.SearchMode, terms []string, rows []dgidb.Interaction) (*Snapshot, error) {
	termsJSON, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("marshaling terms: %w", err)
	}

	snap := &Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Mode:      string(mode),
		Terms:     terms,
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO snapshots (id, created_at, mode, terms_json) VALUES (?, ?, ?, ?)`,
		snap.ID, snap.CreatedAt.Unix(), snap.Mode, string(termsJSON))
	if err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO interactions (
			snapshot_id, seq, gene_name, gene_long_name, drug_name,
			drug_approved, score, attributes_json, sources_json, pmids_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing interaction insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		attrsJSON, err := json.Marshal(row.Attributes)
		if err != nil {
			return nil, fmt.Errorf("marshaling attributes for row %d: %w", i, err)
		}
		sourcesJSON, err := json.Marshal(row.Sources)
		if err != nil {
			return nil, fmt.Errorf("marshaling sources for row %d: %w", i, err)
		}
		pmidsJSON, err := json.Marshal(row.PMIDs)
		if err != nil {
			return nil, fmt.Errorf("marshaling pmids for row %d: %w", i, err)
		}

		_, err = stmt.Exec(
			snap.ID, i, row.GeneName, row.GeneLongName, row.DrugName,
			boolToInt(row.DrugApproved), row.Score,
			string(attrsJSON), string(sourcesJSON), string(pmidsJSON),
		)
		if err != nil {
			return nil, fmt.Errorf("inserting interaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns all snapshots, newest first.
func (d *DB) ListSnapshots() ([]Snapshot, error) {
	rows, err := d.db.Query(`SELECT id, created_at, mode, terms_json FROM snapshots ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, *snap)
	}
	return snaps, rows.Err()
}

// GetSnapshot retrieves a snapshot record by ID. Returns nil if missing.
func (d *DB) GetSnapshot(id string) (*Snapshot, error) {
	row := d.db.QueryRow(`SELECT id, created_at, mode, terms_json FROM snapshots WHERE id = ?`, id)
	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return snap, err
}

// GetInteractions retrieves the interaction rows of a snapshot in their
// original order.
func (d *DB) GetInteractions(id string) ([]dgidb.Interaction, error) {
	rows, err := d.db.Query(`
		SELECT gene_name, gene_long_name, drug_name, drug_approved, score,
			attributes_json, sources_json, pmids_json
		FROM interactions
		WHERE snapshot_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	interactions := []dgidb.Interaction{}
	for rows.Next() {
		var in dgidb.Interaction
		var longName sql.NullString
		var approved int
		var attrsJSON, sourcesJSON, pmidsJSON sql.NullString

		err := rows.Scan(&in.GeneName, &longName, &in.DrugName, &approved, &in.Score,
			&attrsJSON, &sourcesJSON, &pmidsJSON)
		if err != nil {
			return nil, err
		}

		in.GeneLongName = longName.String
		in.DrugApproved = approved != 0
		if attrsJSON.Valid && attrsJSON.String != "" {
			if err := json.Unmarshal([]byte(attrsJSON.String), &in.Attributes); err != nil {
				return nil, fmt.Errorf("parsing attributes JSON: %w", err)
			}
		}
		if sourcesJSON.Valid && sourcesJSON.String != "" {
			if err := json.Unmarshal([]byte(sourcesJSON.String), &in.Sources); err != nil {
				return nil, fmt.Errorf("parsing sources JSON: %w", err)
			}
		}
		if pmidsJSON.Valid && pmidsJSON.String != "" {
			if err := json.Unmarshal([]byte(pmidsJSON.String), &in.PMIDs); err != nil {
				return nil, fmt.Errorf("parsing pmids JSON: %w", err)
			}
		}

		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

// Delete removes a snapshot and its interaction rows. Returns true if a
// snapshot was deleted.
func (d *DB) Delete(id string) (bool, error) {
	if _, err := d.db.Exec(`DELETE FROM interactions WHERE snapshot_id = ?`, id); err != nil {
		return false, fmt.Errorf("deleting interactions: %w", err)
	}
	res, err := d.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(s scanner) (*Snapshot, error) {
	var snap Snapshot
	var createdAt int64
	var termsJSON string

	if err := s.Scan(&snap.ID, &createdAt, &snap.Mode, &termsJSON); err != nil {
		return nil, err
	}

	snap.CreatedAt = time.Unix(createdAt, 0).UTC()
	if err := json.Unmarshal([]byte(termsJSON), &snap.Terms); err != nil {
		return nil, fmt.Errorf("parsing terms JSON for %s: %w", snap.ID, err)
	}
	return &snap, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
