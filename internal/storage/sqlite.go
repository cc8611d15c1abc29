// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session records.
type Store struct {
	db *sql.DB
}

// Session is a single recorded play session.
type Session struct {
	ID       int64
	SceneID  string
	Score    int
	Duration time.Duration
	PlayedAt time.Time
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
			scene_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(scene_id, score DESC);
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

// SaveSession records a completed play session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sceneID string, score int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (scene_id, score, duration_ms) VALUES (?, ?, ?)",
		sceneID, score, duration.Milliseconds(),
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

// TopSessions retrieves the top N sessions for the given scene,
// ordered by score descending.
func (s *Store) TopSessions(sceneID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, score, duration_ms, played_at
		 FROM sessions
		 WHERE scene_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []Session
	for rows.Next() {
		entry, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score for the given scene.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(sceneID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE scene_id = ?",
		sceneID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearSessions deletes all sessions for the given scene.
func (s *Store) ClearSessions(sceneID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE scene_id = ?", sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func scanSession(rows *sql.Rows) (Session, error) {
	var e Session
	var durationMS int64
	var playedAt any
	if err := rows.Scan(&e.ID, &e.SceneID, &e.Score, &durationMS, &playedAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Duration = time.Duration(durationMS) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := playedAt.(type) {
	case time.Time:
		e.PlayedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.PlayedAt = parsed
		}
	}
	return e, nil
}
