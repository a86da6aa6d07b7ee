package recorder

import "StockRadar/internal/model"

// RunRecord summarizes one completed analysis run.
type RunRecord struct {
	ReportPath   string
	SymbolsTotal int
	SymbolsOK    int
}

// Recorder persists run history. Recording is best-effort: callers log
// failures and continue, a failed insert never aborts the run.
type Recorder interface {
	RecordRun(run *RunRecord, results []*model.AnalysisResult) error
	Close() error
}
