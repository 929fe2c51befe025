// Package storage provides SQLite-based persistence for training
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents one finished training game.
type ResultEntry struct {
	ID             int64
	AlgorithmID    string
	SequenceLen    int
	TotalMoves     int
	CorrectMoves   int
	IncorrectMoves int
	Efficiency     int // percentage of attempts that were correct
	DurationSecs   int
	CreatedAt      time.Time
}

// AlgorithmStats contains aggregated statistics for one algorithm.
type AlgorithmStats struct {
	AlgorithmID    string
	GamesCount     int
	BestEfficiency int
	AvgEfficiency  float64
	BestDuration   int // fastest completed game, in seconds
	LastPlayed     time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			algorithm_id TEXT NOT NULL,
			sequence_len INTEGER NOT NULL,
			total_moves INTEGER NOT NULL,
			correct_moves INTEGER NOT NULL,
			incorrect_moves INTEGER NOT NULL,
			efficiency INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_algorithm ON results(algorithm_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(algorithm_id, efficiency DESC);
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

// SaveResult records a finished game. Returns the inserted row ID.
func (s *Store) SaveResult(r ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results
		 (algorithm_id, sequence_len, total_moves, correct_moves, incorrect_moves, efficiency, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.AlgorithmID,
		r.SequenceLen,
		r.TotalMoves,
		r.CorrectMoves,
		r.IncorrectMoves,
		r.Efficiency,
		r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results for the given
// algorithm, newest first.
func (s *Store) RecentResults(algorithmID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, algorithm_id, sequence_len, total_moves, correct_moves,
		        incorrect_moves, efficiency, duration_secs, created_at
		 FROM results
		 WHERE algorithm_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		algorithmID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.AlgorithmID,
			&e.SequenceLen,
			&e.TotalMoves,
			&e.CorrectMoves,
			&e.IncorrectMoves,
			&e.Efficiency,
			&e.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestEfficiency returns the highest recorded efficiency for the given
// algorithm, or 0 if no results exist.
func (s *Store) BestEfficiency(algorithmID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(efficiency) FROM results WHERE algorithm_id = ?",
		algorithmID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best efficiency: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// GetAlgorithmStats retrieves aggregated statistics for one algorithm.
func (s *Store) GetAlgorithmStats(algorithmID string) (*AlgorithmStats, error) {
	stats := &AlgorithmStats{AlgorithmID: algorithmID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(efficiency), 0), COALESCE(AVG(efficiency), 0), COALESCE(MIN(duration_secs), 0)
		 FROM results WHERE algorithm_id = ?`,
		algorithmID,
	).Scan(&stats.GamesCount, &stats.BestEfficiency, &stats.AvgEfficiency, &stats.BestDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get algorithm stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE algorithm_id = ? ORDER BY created_at DESC LIMIT 1`,
		algorithmID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// GetAllAlgorithmStats retrieves statistics for every algorithm that
// has recorded results.
func (s *Store) GetAllAlgorithmStats() (map[string]*AlgorithmStats, error) {
	rows, err := s.db.Query(
		`SELECT algorithm_id, COUNT(*), MAX(efficiency), AVG(efficiency), MIN(duration_secs), MAX(created_at)
		 FROM results
		 GROUP BY algorithm_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all algorithm stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*AlgorithmStats)
	for rows.Next() {
		var a AlgorithmStats
		var lastPlayed any
		if err := rows.Scan(&a.AlgorithmID, &a.GamesCount, &a.BestEfficiency, &a.AvgEfficiency, &a.BestDuration, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		a.LastPlayed = parseCreatedAt(lastPlayed)
		stats[a.AlgorithmID] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all results for the given algorithm.
func (s *Store) ClearResults(algorithmID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE algorithm_id = ?", algorithmID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning DATETIME columns as
// either time.Time or string.
func parseCreatedAt(v any) time.Time {
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
