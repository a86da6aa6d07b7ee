package recorder

import (
	"path/filepath"
	"testing"

	"StockRadar/internal/model"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	results := []*model.AnalysisResult{
		{
			Symbol:       "AAA",
			Name:         "Alpha",
			CurrentPrice: 110,
			Week52:       model.RangeStats{High: 120, Low: 80, Current: 110, PositionPct: 75},
			Month3:       model.RangeStats{High: 120, Low: 80, Current: 110, PositionPct: 75},
			Month1:       model.RangeStats{High: 120, Low: 110, Current: 110, PositionPct: 0},
		},
		{
			Symbol:       "CCC",
			Name:         "Gamma",
			CurrentPrice: 55,
			Week52:       model.RangeStats{High: 60, Low: 40, Current: 55, PositionPct: 75},
		},
	}
	run := &RunRecord{ReportPath: "report.xlsx", SymbolsTotal: 3, SymbolsOK: 2}

	if err := r.RecordRun(run, results); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var runs, stats int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Errorf("expected 1 run row, got %d", runs)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM symbol_stats").Scan(&stats); err != nil {
		t.Fatal(err)
	}
	if stats != 2 {
		t.Errorf("expected 2 symbol_stats rows, got %d", stats)
	}

	var position float64
	if err := r.db.QueryRow(
		"SELECT position_52w FROM symbol_stats WHERE symbol = ?", "AAA").Scan(&position); err != nil {
		t.Fatal(err)
	}
	if position != 75 {
		t.Errorf("expected position 75, got %g", position)
	}
}
