// Package storage provides the SQLite run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal is in-memory unless a file path is given, so by default
// nothing outlives the process.
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

	"github.com/vovakirdan/cubehop/internal/core"
)

// MemoryPath selects a private in-memory journal.
const MemoryPath = ":memory:"

// End reasons recorded for a run.
const (
	EndReasonHit        = "hit"
	EndReasonQuit       = "quit"
	EndReasonDisconnect = "disconnect"
)

// ErrRunNotFound is returned when a run ID is not in the journal.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Run is one span of play between two score resets.
type Run struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time // Zero while the run is open
	Score     int
	EndReason string // Empty while the run is open
	Digest    uint64 // Snapshot digest when the run ended
	Outcomes  int    // Journaled outcomes: landings plus the ending hit, if any
}

// Open reports whether the run has not ended yet.
func (r Run) Open() bool {
	return r.EndReason == ""
}

// OutcomeEntry is one journaled collision.
type OutcomeEntry struct {
	RunID     string
	Tick      uint64
	Kind      string
	PlayerX   float64
	PlayerY   float64
	ObstacleX float64
	ObstacleY float64
	Score     int
}

// Open creates or opens a journal at the given path.
// An empty path or MemoryPath opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	memory := dbPath == "" || dbPath == MemoryPath
	if memory {
		dbPath = MemoryPath
	} else {
		// Expand ~ to home directory
		if dbPath[0] == '~' {
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
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	if memory {
		db.SetMaxOpenConns(1)
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
			id TEXT PRIMARY KEY,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME,
			score INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL DEFAULT '',
			digest TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			player_x REAL NOT NULL,
			player_y REAL NOT NULL,
			obstacle_x REAL NOT NULL,
			obstacle_y REAL NOT NULL,
			score INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id, tick);
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

// StartRun opens a new run and returns its ID.
func (s *Store) StartRun() (string, error) {
	id := uuid.NewString()
	if _, err := s.db.Exec("INSERT INTO runs (id) VALUES (?)", id); err != nil {
		return "", fmt.Errorf("storage: cannot start run: %w", err)
	}
	return id, nil
}

// RecordOutcome appends a collision outcome to a run.
func (s *Store) RecordOutcome(runID string, o core.Outcome) error {
	_, err := s.db.Exec(
		`INSERT INTO outcomes (run_id, tick, kind, player_x, player_y, obstacle_x, obstacle_y, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, int64(o.Tick), o.Kind.String(),
		o.Player.X, o.Player.Y, o.Obstacle.X, o.Obstacle.Y, o.Score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record outcome: %w", err)
	}
	return nil
}

// EndRun closes a run with its final score.
func (s *Store) EndRun(runID string, score int, reason string, digest uint64) error {
	res, err := s.db.Exec(
		`UPDATE runs
		 SET ended_at = CURRENT_TIMESTAMP, score = ?, end_reason = ?, digest = ?
		 WHERE id = ?`,
		score, reason, strconv.FormatUint(digest, 16), runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

const runColumns = `
	r.id, r.started_at, r.ended_at, r.score, r.end_reason, r.digest,
	(SELECT COUNT(*) FROM outcomes o WHERE o.run_id = r.id)`

// RecentRuns retrieves the most recently started runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT`+runColumns+` FROM runs r ORDER BY r.started_at DESC, r.rowid DESC LIMIT ?`,
		limit,
	)
}

// TopRuns retrieves the highest scoring finished runs.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT`+runColumns+` FROM runs r WHERE r.end_reason != '' ORDER BY r.score DESC, r.rowid ASC LIMIT ?`,
		limit,
	)
}

// RunByID retrieves a single run.
func (s *Store) RunByID(runID string) (Run, error) {
	runs, err := s.queryRuns(`SELECT`+runColumns+` FROM runs r WHERE r.id = ?`, runID)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                  Run
			startedAt, endedAt any
			digest             string
		)
		if err := rows.Scan(&r.ID, &startedAt, &endedAt, &r.Score, &r.EndReason, &digest, &r.Outcomes); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		r.EndedAt = parseTime(endedAt)
		if digest != "" {
			if d, err := strconv.ParseUint(digest, 16, 64); err == nil {
				r.Digest = d
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Outcomes retrieves the outcomes of a run in tick order.
func (s *Store) Outcomes(runID string) ([]OutcomeEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, tick, kind, player_x, player_y, obstacle_x, obstacle_y, score
		 FROM outcomes
		 WHERE run_id = ?
		 ORDER BY tick ASC, id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var entries []OutcomeEntry
	for rows.Next() {
		var (
			e    OutcomeEntry
			tick int64
		)
		if err := rows.Scan(&e.RunID, &tick, &e.Kind, &e.PlayerX, &e.PlayerY, &e.ObstacleX, &e.ObstacleY, &e.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Tick = uint64(tick)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest finished run score, or 0 if there is none.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE end_reason != ''").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// parseTime handles the driver returning either time.Time or a string.
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
