package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"DrawSentinel/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while a run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			timestamp      INTEGER NOT NULL,
			source         TEXT,
			draw_count     INTEGER,
			sets_requested INTEGER,
			sets_generated INTEGER,
			seed           INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS candidates (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			numbers   TEXT NOT NULL,
			strategy  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_run ON candidates(run_id)`,

		`CREATE TABLE IF NOT EXISTS validations (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT NOT NULL,
			timestamp       INTEGER NOT NULL,
			draws_tested    INTEGER,
			high_performers INTEGER,
			match_counts    TEXT,
			percentages     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_validations_run ON validations(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run metadata and its candidate sets.
func (r *SQLiteRecorder) RecordRun(run *RunRecord, sets []model.CandidateSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, timestamp, source, draw_count, sets_requested, sets_generated, seed)
		VALUES (?,?,?,?,?,?,?)`,
		run.RunID, now, run.Source, run.DrawCount,
		run.SetsRequested, run.SetsGenerated, int64(run.Seed),
	)
	if err != nil {
		return err
	}

	for _, set := range sets {
		if _, err := r.db.Exec(`INSERT INTO candidates
			(run_id, timestamp, numbers, strategy)
			VALUES (?,?,?,?)`,
			run.RunID, now, joinNumbers(set.Numbers), string(set.Strategy),
		); err != nil {
			return err
		}
	}
	return nil
}

// RecordValidation stores the back-test result. Match buckets and
// percentages are kept as JSON columns since the bucket range depends on
// the configured selection count.
func (r *SQLiteRecorder) RecordValidation(runID string, res *model.ValidationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts, err := json.Marshal(res.MatchCounts)
	if err != nil {
		return fmt.Errorf("marshal match counts: %w", err)
	}
	percentages, err := json.Marshal(res.MatchPercentages)
	if err != nil {
		return fmt.Errorf("marshal percentages: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO validations
		(run_id, timestamp, draws_tested, high_performers, match_counts, percentages)
		VALUES (?,?,?,?,?,?)`,
		runID, time.Now().Unix(), res.DrawsTested,
		len(res.HighPerformers), string(counts), string(percentages),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, "-")
}
