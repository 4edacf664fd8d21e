// Package storage provides SQLite-based persistence for settings and deal history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values stored for a finished deal.
const (
	OutcomeWon       = "won"
	OutcomeAbandoned = "abandoned"
)

// SettingVolume is the settings key for the sound volume.
const SettingVolume = "volume"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// DealRecord is one finished deal.
type DealRecord struct {
	ID         string
	Seed       int64
	Outcome    string
	StartedAt  time.Time
	FinishedAt time.Time
}

// DealStats contains aggregated deal history.
type DealStats struct {
	Played     int
	Won        int
	Abandoned  int
	LastPlayed time.Time
}

// WinRate returns the fraction of deals won, or 0 with no history.
func (s DealStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialise writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS deals (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_deals_finished ON deals(finished_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordDeal stores a finished deal and returns its ID.
// A new UUID is assigned when rec.ID is empty.
func (s *Store) RecordDeal(rec DealRecord) (string, error) {
	switch rec.Outcome {
	case OutcomeWon, OutcomeAbandoned:
	default:
		return "", fmt.Errorf("storage: unknown outcome %q", rec.Outcome)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = rec.FinishedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO deals (id, seed, outcome, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Seed, rec.Outcome,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record deal: %w", err)
	}
	return rec.ID, nil
}

// RecentDeals retrieves the most recently finished deals, newest first.
func (s *Store) RecentDeals(limit int) ([]DealRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, outcome, started_at, finished_at
		 FROM deals
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query deals: %w", err)
	}
	defer rows.Close()

	var deals []DealRecord
	for rows.Next() {
		var d DealRecord
		var startedAt, finishedAt any
		if err := rows.Scan(&d.ID, &d.Seed, &d.Outcome, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		d.StartedAt = parseTime(startedAt)
		d.FinishedAt = parseTime(finishedAt)
		deals = append(deals, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return deals, nil
}

// Stats aggregates the whole deal history.
func (s *Store) Stats() (*DealStats, error) {
	stats := &DealStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		 FROM deals`,
		OutcomeWon, OutcomeAbandoned,
	).Scan(&stats.Played, &stats.Won, &stats.Abandoned)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get deal stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT finished_at FROM deals ORDER BY finished_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearDeals deletes the deal history.
func (s *Store) ClearDeals() error {
	if _, err := s.db.Exec("DELETE FROM deals"); err != nil {
		return fmt.Errorf("storage: cannot clear deals: %w", err)
	}
	return nil
}

// Setting returns the stored value for key. ok is false when unset.
func (s *Store) Setting(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// Volume returns the saved volume, or def when none is saved or the
// saved value is unreadable.
func (s *Store) Volume(def float64) (float64, error) {
	raw, ok, err := s.Setting(SettingVolume)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return def, nil
	}
	return v, nil
}

// SetVolume saves the volume, clamped to [0, 1].
func (s *Store) SetVolume(v float64) error {
	v = max(0, min(1, v))
	return s.SetSetting(SettingVolume, strconv.FormatFloat(v, 'f', -1, 64))
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
