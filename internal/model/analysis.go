package model

import "time"

// RangeStats describes where the current price sits within one trailing window.
type RangeStats struct {
	High        float64
	Low         float64
	Current     float64
	PositionPct float64 // 0 ~ 100
}

// AnalysisResult holds the computed statistics for one symbol across all windows.
type AnalysisResult struct {
	Symbol         string
	Name           string
	CurrentPrice   float64
	Week52         RangeStats
	Month3         RangeStats
	Month1         RangeStats
	AvgPositionPct float64 // mean of the three window positions
	Source         string
	FetchedAt      time.Time
}

// Outcome is the tagged per-symbol result of one pipeline pass.
// Exactly one of Result and Err is set.
type Outcome struct {
	Symbol string
	Name   string
	Result *AnalysisResult
	Err    error
}

// OK reports whether the symbol was analyzed successfully.
func (o Outcome) OK() bool { return o.Err == nil }
