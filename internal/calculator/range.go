package calculator

import (
	"time"

	"StockRadar/internal/model"
)

// Trailing window lengths, measured back from the date of the last bar.
// The 52-week window is the full fetched series: the fetch lookback itself
// bounds it to one year.
const (
	Window3M = 91 * 24 * time.Hour
	Window1M = 30 * 24 * time.Hour
)

// AnalysisError indicates a series too thin to analyze.
type AnalysisError struct {
	Symbol string
	Reason string
}

func (e *AnalysisError) Error() string {
	return "analyze " + e.Symbol + ": " + e.Reason
}

// Windows holds the per-window statistics for one analyzed series.
type Windows struct {
	Week52         model.RangeStats
	Month3         model.RangeStats
	Month1         model.RangeStats
	AvgPositionPct float64
}

// Analyze computes range statistics for the 52-week, 3-month, and 1-month
// trailing windows of a price series. The series must be ascending by date,
// contain at least 2 bars, and span the 1-month window.
func Analyze(series *model.PriceSeries) (*Windows, error) {
	bars := series.Bars
	if len(bars) < 2 {
		return nil, &AnalysisError{Symbol: series.Symbol, Reason: "fewer than 2 bars"}
	}
	last := series.LastDate()
	if bars[0].Time.After(last.Add(-Window1M)) {
		return nil, &AnalysisError{Symbol: series.Symbol, Reason: "series does not span the 1-month window"}
	}

	w := &Windows{
		Week52: windowStats(bars, time.Time{}),
		Month3: windowStats(bars, last.Add(-Window3M)),
		Month1: windowStats(bars, last.Add(-Window1M)),
	}
	w.AvgPositionPct = (w.Week52.PositionPct + w.Month3.PositionPct + w.Month1.PositionPct) / 3
	return w, nil
}

// windowStats computes high, low, and position over the bars at or after
// cutoff. Bars are ascending, so the window is always non-empty: the last
// bar defines the cutoff origin and is therefore always included.
func windowStats(bars []model.OHLCV, cutoff time.Time) model.RangeStats {
	start := 0
	for start < len(bars)-1 && bars[start].Time.Before(cutoff) {
		start++
	}
	window := bars[start:]

	high := window[0].Close
	low := window[0].Close
	for _, b := range window[1:] {
		if b.Close > high {
			high = b.Close
		}
		if b.Close < low {
			low = b.Close
		}
	}
	current := window[len(window)-1].Close
	return model.RangeStats{
		High:        high,
		Low:         low,
		Current:     current,
		PositionPct: Position(current, high, low),
	}
}

// Position returns where current sits within the [low, high] range as a
// percentage, clamped to 0~100. A flat range is defined as 50 to keep the
// value deterministic and avoid division by zero.
func Position(current, high, low float64) float64 {
	if high == low {
		return 50
	}
	pos := (current - low) / (high - low) * 100
	if pos < 0 {
		pos = 0
	}
	if pos > 100 {
		pos = 100
	}
	return pos
}
