package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockRadar/internal/model"
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
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			report_path   TEXT,
			symbols_total INTEGER,
			symbols_ok    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS symbol_stats (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        INTEGER NOT NULL REFERENCES runs(id),
			symbol        TEXT NOT NULL,
			name          TEXT,
			current_price REAL,
			high_52w      REAL,
			low_52w       REAL,
			position_52w  REAL,
			high_3m       REAL,
			low_3m        REAL,
			position_3m   REAL,
			high_1m       REAL,
			low_1m        REAL,
			position_1m   REAL,
			avg_position  REAL,
			source        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stats_run ON symbol_stats(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_stats_symbol ON symbol_stats(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts the run summary and one row per analyzed symbol.
func (r *SQLiteRecorder) RecordRun(run *RunRecord, results []*model.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (timestamp, report_path, symbols_total, symbols_ok)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), run.ReportPath, run.SymbolsTotal, run.SymbolsOK,
	)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, ar := range results {
		if _, err := tx.Exec(`INSERT INTO symbol_stats
			(run_id, symbol, name, current_price,
			 high_52w, low_52w, position_52w,
			 high_3m, low_3m, position_3m,
			 high_1m, low_1m, position_1m,
			 avg_position, source)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, ar.Symbol, ar.Name, ar.CurrentPrice,
			ar.Week52.High, ar.Week52.Low, ar.Week52.PositionPct,
			ar.Month3.High, ar.Month3.Low, ar.Month3.PositionPct,
			ar.Month1.High, ar.Month1.Low, ar.Month1.PositionPct,
			ar.AvgPositionPct, ar.Source,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
