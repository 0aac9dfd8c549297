// Package storage provides SQLite-based persistence for player scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single score record.
type ScoreEntry struct {
	ID         int64
	PlayerName string
	ScoreValue int
	GameDate   time.Time
}

// Stats contains aggregated statistics over all recorded scores.
type Stats struct {
	GamesCount int
	Players    int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score_value INTEGER NOT NULL,
			game_date DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player_name);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score_value DESC);
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

// SaveScore records a new score and returns the stored entry.
func (s *Store) SaveScore(player string, value int) (ScoreEntry, error) {
	now := time.Now().UTC().Truncate(time.Second)
	result, err := s.db.Exec(
		"INSERT INTO scores (player_name, score_value, game_date) VALUES (?, ?, ?)",
		player, value, now.Format(timeLayout),
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return ScoreEntry{ID: id, PlayerName: player, ScoreValue: value, GameDate: now}, nil
}

// TopScores retrieves the best N scores, highest first.
// Equal scores keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, player_name, score_value, game_date
		 FROM scores
		 ORDER BY score_value DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// AllScores retrieves every score, highest first.
func (s *Store) AllScores() ([]ScoreEntry, error) {
	return s.query(
		`SELECT id, player_name, score_value, game_date
		 FROM scores
		 ORDER BY score_value DESC, id ASC`,
	)
}

// PlayerScores retrieves every score of one player, highest first.
func (s *Store) PlayerScores(player string) ([]ScoreEntry, error) {
	return s.query(
		`SELECT id, player_name, score_value, game_date
		 FROM scores
		 WHERE player_name = ?
		 ORDER BY score_value DESC, id ASC`,
		player,
	)
}

// PlayerHighScore returns the best score of one player.
// Returns nil if the player has no scores.
func (s *Store) PlayerHighScore(player string) (*ScoreEntry, error) {
	return s.queryOne(
		`SELECT id, player_name, score_value, game_date
		 FROM scores
		 WHERE player_name = ?
		 ORDER BY score_value DESC, id ASC
		 LIMIT 1`,
		player,
	)
}

// ScoreByID retrieves one score. Returns nil if it does not exist.
func (s *Store) ScoreByID(id int64) (*ScoreEntry, error) {
	return s.queryOne(
		`SELECT id, player_name, score_value, game_date
		 FROM scores
		 WHERE id = ?`,
		id,
	)
}

// DeleteScore removes one score. Reports whether a row was deleted.
func (s *Store) DeleteScore(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// CountAtLeast returns how many scores are greater than or equal to value.
// A new score's rank is CountAtLeast(value)+1 before it is saved.
func (s *Store) CountAtLeast(value int) (int, error) {
	var n int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM scores WHERE score_value >= ?", value,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	return n, nil
}

// ClearScores deletes all scores.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player_name), COALESCE(MAX(score_value), 0),
		        COALESCE(AVG(score_value), 0), COALESCE(SUM(score_value), 0), MAX(game_date)
		 FROM scores`,
	).Scan(&stats.GamesCount, &stats.Players, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

func (s *Store) query(q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func (s *Store) queryOne(q string, args ...any) (*ScoreEntry, error) {
	e, err := scan(s.db.QueryRow(q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (ScoreEntry, error) {
	var e ScoreEntry
	var gameDate any
	if err := row.Scan(&e.ID, &e.PlayerName, &e.ScoreValue, &gameDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.GameDate = parseTime(gameDate)
	return e, nil
}

// parseTime handles both time.Time and string datetimes.
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
