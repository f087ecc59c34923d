package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT NOT NULL,
	variant    TEXT NOT NULL,
	seed       INTEGER NOT NULL,
	trials     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	run_id            INTEGER NOT NULL REFERENCES runs(id),
	size              INTEGER NOT NULL,
	k                 INTEGER NOT NULL,
	avg_rate          REAL NOT NULL,
	avg_density       REAL NOT NULL,
	avg_clustering    REAL NOT NULL,
	avg_shortest_path REAL NOT NULL,
	avg_std_rate      REAL NOT NULL,
	avg_median_rate   REAL NOT NULL,
	avg_incomp_nodes  REAL NOT NULL,
	avg_n_comp_nodes  REAL NOT NULL,
	avg_steps         REAL NOT NULL,
	failed            INTEGER NOT NULL DEFAULT 0,
	error             TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (run_id, size, k)
);
`

// RunInfo describes the experiment a SQLiteSink records.
type RunInfo struct {
	Variant string
	Seed    int64
	Trials  int
}

// SQLiteSink appends rows to a SQLite database. Each sink registers one row
// in the runs table, so repeated experiments can share a database file.
type SQLiteSink struct {
	mu     sync.Mutex
	db     *sql.DB
	runID  int64
	closed bool
}

// OpenSQLite opens (creating if needed) the database at path and registers a
// new run. Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string, info RunInfo) (*SQLiteSink, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("results: mkdir: %w", err)
		}
		dsn = path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("results: open database: %w", err)
	}
	// single writer; also keeps ":memory:" on one connection
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("results: init schema: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO runs (started_at, variant, seed, trials) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), info.Variant, info.Seed, info.Trials)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("results: register run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("results: register run: %w", err)
	}

	return &SQLiteSink{db: db, runID: id}, nil
}

// RunID returns the id of the run this sink records.
func (s *SQLiteSink) RunID() int64 { return s.runID }

// Write implements Sink.
func (s *SQLiteSink) Write(ctx context.Context, r Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	failed := 0
	if r.Failed {
		failed = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (run_id, size, k, avg_rate, avg_density, avg_clustering,
			avg_shortest_path, avg_std_rate, avg_median_rate, avg_incomp_nodes,
			avg_n_comp_nodes, avg_steps, failed, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, r.Size, r.K, r.AvgRate, r.AvgDensity, r.AvgClustering,
		r.AvgShortestPath, r.AvgStdRate, r.AvgMedianRate, r.AvgIncompNodes,
		r.AvgNCompNodes, r.AvgSteps, failed, r.Err)
	if err != nil {
		return fmt.Errorf("results: insert row (%d,%d): %w", r.Size, r.K, err)
	}
	return nil
}

// Rows returns this run's rows ordered by size, then k.
func (s *SQLiteSink) Rows(ctx context.Context) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT size, k, avg_rate, avg_density, avg_clustering, avg_shortest_path,
			avg_std_rate, avg_median_rate, avg_incomp_nodes, avg_n_comp_nodes,
			avg_steps, failed, error
		FROM results WHERE run_id = ? ORDER BY size, k`, s.runID)
	if err != nil {
		return nil, fmt.Errorf("results: query rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			r      Row
			failed int
		)
		if err = rows.Scan(&r.Size, &r.K, &r.AvgRate, &r.AvgDensity, &r.AvgClustering,
			&r.AvgShortestPath, &r.AvgStdRate, &r.AvgMedianRate, &r.AvgIncompNodes,
			&r.AvgNCompNodes, &r.AvgSteps, &failed, &r.Err); err != nil {
			return nil, fmt.Errorf("results: scan row: %w", err)
		}
		r.Failed = failed != 0
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("results: iterate rows: %w", err)
	}
	return out, nil
}

// Close implements Sink. Closing twice is a no-op.
func (s *SQLiteSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
