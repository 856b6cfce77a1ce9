// Package storage provides the SQLite-backed scoring ledger: finished runs
// and the coin batches reported while they were played.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// AllCharacters selects every character in queries that take one.
const AllCharacters = -1

// Store manages the SQLite database connection for the ledger.
type Store struct {
	db *sql.DB
}

// RunResult is one finished run.
type RunResult struct {
	ID        string // Run uuid; generated by SubmitRun when empty
	Character int
	Score     float64
	Coins     int
	Distance  int
	CreatedAt time.Time
}

// CharacterStats aggregates the runs of one character.
type CharacterStats struct {
	Character  int
	Runs       int
	HighScore  float64
	AvgScore   float64
	TotalCoins int64
	LastPlayed time.Time
}

// NewRunID returns a fresh run id.
func NewRunID() string {
	return uuid.NewString()
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			character_id INTEGER NOT NULL,
			score REAL NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			distance INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_character ON runs(character_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(character_id, score DESC);

		CREATE TABLE IF NOT EXISTS coin_batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_coin_batches_run ON coin_batches(run_id);
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

// SubmitRun records a finished run and returns its run id.
// Submitting the same run id twice fails.
func (s *Store) SubmitRun(r RunResult) (string, error) {
	if r.ID == "" {
		r.ID = NewRunID()
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, character_id, score, coins, distance) VALUES (?, ?, ?, ?, ?)",
		r.ID, r.Character, r.Score, r.Coins, r.Distance,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot submit run: %w", err)
	}
	return r.ID, nil
}

// RecordCoinBatch appends a coin batch to a run. Batches may arrive before
// the run itself is submitted.
func (s *Store) RecordCoinBatch(runID string, count int) error {
	if count <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		"INSERT INTO coin_batches (run_id, count) VALUES (?, ?)",
		runID, count,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record coin batch: %w", err)
	}
	return nil
}

// BatchedCoins returns the sum of all batches recorded for a run.
func (s *Store) BatchedCoins(runID string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT SUM(count) FROM coin_batches WHERE run_id = ?",
		runID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query coin batches: %w", err)
	}
	return int(total.Int64), nil
}

// Run retrieves a run by id. It returns nil when no such run exists.
func (s *Store) Run(runID string) (*RunResult, error) {
	row := s.db.QueryRow(
		`SELECT run_id, character_id, score, coins, distance, created_at
		 FROM runs WHERE run_id = ?`,
		runID,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// TopRuns retrieves the best runs for a character, or for everyone with
// AllCharacters. Results are ordered by score descending.
func (s *Store) TopRuns(character, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, character_id, score, coins, distance, created_at
		 FROM runs
		 WHERE ? = -1 OR character_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		character, character, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the best score of a character, or of everyone with
// AllCharacters. Returns 0 if no runs exist.
func (s *Store) HighScore(character int) (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE ? = -1 OR character_id = ?",
		character, character,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score.Float64, nil
}

// ClearRuns deletes the runs of a character and their coin batches.
// AllCharacters clears everything.
func (s *Store) ClearRuns(character int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin clear: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM coin_batches WHERE run_id IN
		 (SELECT run_id FROM runs WHERE ? = -1 OR character_id = ?)`,
		character, character,
	); err != nil {
		return fmt.Errorf("storage: cannot clear coin batches: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE ? = -1 OR character_id = ?", character, character); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// CharacterStats retrieves aggregated statistics for every character that
// has finished a run.
func (s *Store) CharacterStats() (map[int]*CharacterStats, error) {
	rows, err := s.db.Query(
		`SELECT character_id, COUNT(*), MAX(score), AVG(score), SUM(coins), MAX(created_at)
		 FROM runs
		 GROUP BY character_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get character stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*CharacterStats)
	for rows.Next() {
		var cs CharacterStats
		var lastPlayed any
		if err := rows.Scan(&cs.Character, &cs.Runs, &cs.HighScore, &cs.AvgScore, &cs.TotalCoins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.LastPlayed = parseTime(lastPlayed)
		stats[cs.Character] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunResult, error) {
	var r RunResult
	var createdAt any
	if err := row.Scan(&r.ID, &r.Character, &r.Score, &r.Coins, &r.Distance, &createdAt); err != nil {
		return RunResult{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and the driver's string form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
