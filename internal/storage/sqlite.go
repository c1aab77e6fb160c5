// Package storage provides SQLite-based persistence for run summaries.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout sorts lexicographically in UTC.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Session is the summary of one demo run.
type Session struct {
	ID        int64
	Backend   string
	StartedAt time.Time
	Duration  time.Duration
	Frames    int
	Bounces   int
	AvgFPS    float64
}

// BackendStats aggregates every stored run of one backend.
type BackendStats struct {
	Backend     string
	Runs        int
	TotalFrames int64
	BestFPS     float64
	AvgFPS      float64
	LastRun     time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			backend TEXT NOT NULL,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			avg_fps REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_backend ON sessions(backend);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// SaveSession records a run. AvgFPS is derived from frames and duration when
// left at zero. Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.Backend == "" {
		return 0, errors.New("storage: session has no backend")
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}
	if sess.AvgFPS == 0 && sess.Duration > 0 {
		sess.AvgFPS = float64(sess.Frames) / sess.Duration.Seconds()
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (backend, started_at, duration_ms, frames, bounces, avg_fps)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.Backend,
		sess.StartedAt.UTC().Format(timeLayout),
		sess.Duration.Milliseconds(),
		sess.Frames,
		sess.Bounces,
		sess.AvgFPS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, backend, started_at, duration_ms, frames, bounces, avg_fps`

// RecentSessions retrieves the most recent runs across all backends,
// newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// BestSession returns the run with the highest average frame rate for
// backend, or nil when there is none.
func (s *Store) BestSession(backend string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE backend = ?
		 ORDER BY avg_fps DESC, id ASC
		 LIMIT 1`,
		backend,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Count returns the number of stored runs for backend, or for every backend
// when backend is empty.
func (s *Store) Count(backend string) (int, error) {
	var n int
	var err error
	if backend == "" {
		err = s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM sessions WHERE backend = ?", backend).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}

// ClearSessions deletes all runs of backend.
func (s *Store) ClearSessions(backend string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE backend = ?", backend)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// AllBackendStats aggregates stored runs per backend.
func (s *Store) AllBackendStats() (map[string]*BackendStats, error) {
	rows, err := s.db.Query(
		`SELECT backend, COUNT(*), SUM(frames), MAX(avg_fps), AVG(avg_fps), MAX(started_at)
		 FROM sessions
		 GROUP BY backend`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get backend stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BackendStats)
	for rows.Next() {
		var st BackendStats
		var lastRun any
		if err := rows.Scan(&st.Backend, &st.Runs, &st.TotalFrames, &st.BestFPS, &st.AvgFPS, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Backend] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var sess Session
	var startedAt any
	var durationMs int64
	err := row.Scan(
		&sess.ID,
		&sess.Backend,
		&startedAt,
		&durationMs,
		&sess.Frames,
		&sess.Bounces,
		&sess.AvgFPS,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return sess, err
	}
	if err != nil {
		return sess, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	sess.StartedAt = parseTime(startedAt)
	sess.Duration = time.Duration(durationMs) * time.Millisecond
	return sess, nil
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
