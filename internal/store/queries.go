package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/brewdiff/internal/manifest"
)

// RecordIntent persists an intent snapshot for the given profile and
// returns the new record's id.
func (s *Store) RecordIntent(profile string, intent *manifest.Intent) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO intent_records (recorded_at, profile, cleanup_on_activation, upgrade_on_activation)
		VALUES (?, ?, ?, ?)
	`, time.Now().UTC().Format(time.RFC3339), profile, intent.CleanupOnActivation, intent.UpgradeOnActivation)
	if err != nil {
		return 0, fmt.Errorf("failed to insert intent record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record id: %w", err)
	}

	insert := func(kind, name string, masID sql.NullInt64) error {
		_, err := tx.Exec(`
			INSERT INTO intent_items (record_id, kind, name, mas_id)
			VALUES (?, ?, ?, ?)
		`, id, kind, name, masID)
		if err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", kind, name, err)
		}
		return nil
	}

	for name := range intent.Taps {
		if err := insert(kindTap, name, sql.NullInt64{}); err != nil {
			return 0, err
		}
	}
	for name := range intent.Brews {
		if err := insert(kindBrew, name, sql.NullInt64{}); err != nil {
			return 0, err
		}
	}
	for name := range intent.Casks {
		if err := insert(kindCask, name, sql.NullInt64{}); err != nil {
			return 0, err
		}
	}
	for name, masID := range intent.StoreApps {
		if err := insert(kindMas, name, sql.NullInt64{Int64: masID, Valid: true}); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit intent record: %w", err)
	}

	return id, nil
}

// LatestIntent returns the most recently recorded intent, or nil when
// nothing has been recorded yet.
func (s *Store) LatestIntent() (*IntentRecord, error) {
	rec, err := s.scanRecord(s.db.QueryRow(`
		SELECT id, recorded_at, profile, cleanup_on_activation, upgrade_on_activation
		FROM intent_records
		ORDER BY id DESC
		LIMIT 1
	`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadItems(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListIntents returns all recorded intents, newest first.
func (s *Store) ListIntents() ([]*IntentRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, recorded_at, profile, cleanup_on_activation, upgrade_on_activation
		FROM intent_records
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list intent records: %w", err)
	}
	defer rows.Close()

	var records []*IntentRecord
	for rows.Next() {
		rec, err := s.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate intent records: %w", err)
	}

	for _, rec := range records {
		if err := s.loadItems(rec); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanRecord(row scanner) (*IntentRecord, error) {
	rec := &IntentRecord{Intent: manifest.NewIntent()}
	var recordedAt string

	err := row.Scan(&rec.ID, &recordedAt, &rec.Profile,
		&rec.Intent.CleanupOnActivation, &rec.Intent.UpgradeOnActivation)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan intent record: %w", err)
	}

	rec.RecordedAt, err = time.Parse(time.RFC3339, recordedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recorded_at for record %d: %w", rec.ID, err)
	}

	return rec, nil
}

func (s *Store) loadItems(rec *IntentRecord) error {
	rows, err := s.db.Query(`
		SELECT kind, name, mas_id
		FROM intent_items
		WHERE record_id = ?
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to load items for record %d: %w", rec.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, name string
		var masID sql.NullInt64
		if err := rows.Scan(&kind, &name, &masID); err != nil {
			return fmt.Errorf("failed to scan item for record %d: %w", rec.ID, err)
		}

		switch kind {
		case kindTap:
			rec.Intent.Taps[name] = struct{}{}
		case kindBrew:
			rec.Intent.Brews[name] = struct{}{}
		case kindCask:
			rec.Intent.Casks[name] = struct{}{}
		case kindMas:
			rec.Intent.StoreApps[name] = masID.Int64
		}
	}

	return rows.Err()
}
