package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"StockLens/internal/model"
)

// SQLiteRecorder persists load events and report findings to a SQLite database.
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

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS load_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			run_id      TEXT NOT NULL,
			source      TEXT NOT NULL,
			format      TEXT,
			records     INTEGER,
			duration_ms INTEGER,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_load_run ON load_events(run_id)`,

		`CREATE TABLE IF NOT EXISTS analysis_results (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			run_id      TEXT NOT NULL,
			symbol      TEXT NOT NULL,
			days        INTEGER,
			first_date  TEXT,
			last_date   TEXT,
			analyser    TEXT NOT NULL,
			metric      TEXT NOT NULL,
			value       REAL,
			value_date  TEXT,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_symbol ON analysis_results(symbol, run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordLoad(evt *LoadEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO load_events
		(timestamp, run_id, source, format, records, duration_ms, error)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, evt.Source, evt.Format,
		evt.Records, evt.Duration, evt.Error,
	)
	return err
}

// RecordReport stores one row per finding, in a single transaction.
func (r *SQLiteRecorder) RecordReport(runID string, rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, f := range rep.Findings {
		_, err := tx.Exec(`INSERT INTO analysis_results
			(timestamp, run_id, symbol, days, first_date, last_date,
			 analyser, metric, value, value_date, error)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			now, runID, rep.Symbol, rep.Days, rep.First, rep.Last,
			f.Analyser, f.Metric, f.Value, f.Date, f.Err,
		)
		if err != nil {
			return fmt.Errorf("insert %s/%s: %w", f.Analyser, f.Metric, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
