// Package storage provides SQLite-based persistence for completed run
// summaries. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// PopulationEntry is one species' head count at the start and end of a run.
type PopulationEntry struct {
	Species string
	Initial int
	Final   int
}

// RunRecord summarizes a finished simulation run.
type RunRecord struct {
	ID          int64
	Seed        int64
	Width       int
	Height      int
	Turns       int
	Populations []PopulationEntry
	CreatedAt   time.Time
}

// Winner returns the species with the largest final population, or ""
// when the top spot is shared or nobody survived.
func (r RunRecord) Winner() string {
	best, winner, tied := 0, "", false
	for _, p := range r.Populations {
		switch {
		case p.Final > best:
			best, winner, tied = p.Final, p.Species, false
		case p.Final == best && best > 0:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return winner
}

// Survivors returns the total final population.
func (r RunRecord) Survivors() int {
	n := 0
	for _, p := range r.Populations {
		n += p.Final
	}
	return n
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			survivors INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_populations (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			species TEXT NOT NULL,
			initial_count INTEGER NOT NULL,
			final_count INTEGER NOT NULL,
			PRIMARY KEY (run_id, species)
		);
		CREATE INDEX IF NOT EXISTS idx_run_populations_species ON run_populations(species);
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

// SaveRun records a finished run and its populations in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	result, err := tx.Exec(
		"INSERT INTO runs (seed, width, height, turns, winner, survivors) VALUES (?, ?, ?, ?, ?, ?)",
		run.Seed, run.Width, run.Height, run.Turns, run.Winner(), run.Survivors(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, p := range run.Populations {
		if _, err := tx.Exec(
			"INSERT INTO run_populations (run_id, species, initial_count, final_count) VALUES (?, ?, ?, ?)",
			id, p.Species, p.Initial, p.Final,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save population for %s: %w", p.Species, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, width, height, turns, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Width, &r.Height, &r.Turns, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range runs {
		pops, err := s.populations(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Populations = pops
	}
	return runs, nil
}

// RunByID retrieves a single run. Returns nil if no such run exists.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	var r RunRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, width, height, turns, created_at FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &r.Width, &r.Height, &r.Turns, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run %d: %w", id, err)
	}
	r.CreatedAt = parseTime(createdAt)

	r.Populations, err = s.populations(r.ID)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// populations loads one run's species rows, ordered by species name.
func (s *Store) populations(runID int64) ([]PopulationEntry, error) {
	rows, err := s.db.Query(
		`SELECT species, initial_count, final_count
		 FROM run_populations
		 WHERE run_id = ?
		 ORDER BY species`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query populations: %w", err)
	}
	defer rows.Close()

	var out []PopulationEntry
	for rows.Next() {
		var p PopulationEntry
		if err := rows.Scan(&p.Species, &p.Initial, &p.Final); err != nil {
			return nil, fmt.Errorf("storage: cannot scan population row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM run_populations"); err != nil {
		return fmt.Errorf("storage: cannot clear populations: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SpeciesStats contains aggregated results for one species across runs.
type SpeciesStats struct {
	Species   string
	Runs      int
	Wins      int
	BestFinal int
	AvgFinal  float64
	LastSeen  time.Time
}

// AllSpeciesStats aggregates every species that took part in a recorded run,
// ordered by wins, then name.
func (s *Store) AllSpeciesStats() ([]SpeciesStats, error) {
	rows, err := s.db.Query(
		`SELECT p.species,
		        COUNT(*),
		        SUM(CASE WHEN r.winner = p.species THEN 1 ELSE 0 END),
		        MAX(p.final_count),
		        AVG(p.final_count),
		        MAX(r.created_at)
		 FROM run_populations p
		 JOIN runs r ON r.id = p.run_id
		 GROUP BY p.species`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get species stats: %w", err)
	}
	defer rows.Close()

	var stats []SpeciesStats
	for rows.Next() {
		var st SpeciesStats
		var lastSeen any
		if err := rows.Scan(&st.Species, &st.Runs, &st.Wins, &st.BestFinal, &st.AvgFinal, &lastSeen); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastSeen = parseTime(lastSeen)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Wins != stats[j].Wins {
			return stats[i].Wins > stats[j].Wins
		}
		return stats[i].Species < stats[j].Species
	})
	return stats, nil
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
