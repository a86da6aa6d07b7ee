package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"StockRadar/internal/collector"
	"StockRadar/internal/config"
	"StockRadar/internal/model"
	"StockRadar/internal/recorder"
	"StockRadar/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockRadar starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	delay := time.Duration(cfg.DataSource.DelaySeconds * float64(time.Second))
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewBarsAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, delay)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.DataSource.Suffix, cfg.Proxy, delay)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Run the pipeline: one sequential pass over all configured symbols.
	symbols := cfg.SymbolList()
	log.Printf("[INFO] analyzing %d symbols", len(symbols))

	col := collector.NewCollector(fetcher)
	outcomes := col.CollectAll(context.Background(), symbols)

	fmt.Print(report.FormatSummary(outcomes))

	// Write the spreadsheet. A write failure is fatal: no silent partial report.
	path, err := report.WriteExcel(outcomes, cfg.Output.Dir, time.Now())
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	log.Printf("[INFO] report written: %s", path)

	// Record run history
	ok := 0
	for _, o := range outcomes {
		if o.OK() {
			ok++
		}
	}
	if err := rec.RecordRun(&recorder.RunRecord{
		ReportPath:   path,
		SymbolsTotal: len(outcomes),
		SymbolsOK:    ok,
	}, successResults(outcomes)); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	log.Printf("[INFO] done: %d/%d symbols analyzed", ok, len(outcomes))
}

func successResults(outcomes []model.Outcome) []*model.AnalysisResult {
	results := make([]*model.AnalysisResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			results = append(results, o.Result)
		}
	}
	return results
}
