package calculator

import (
	"math"
	"reflect"
	"testing"
	"time"

	"StockRadar/internal/model"
)

func seriesAt(base time.Time, dayOffsets []int, closes []float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(dayOffsets))
	for i, off := range dayOffsets {
		c := closes[i]
		bars[i] = model.OHLCV{
			Time:  base.AddDate(0, 0, off),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

func TestAnalyze_WindowSelection(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	series := seriesAt(base, []int{-400, -90, -25, 0}, []float64{100, 80, 120, 110})

	w, err := Analyze(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 52-week window covers the whole series.
	if w.Week52.High != 120 || w.Week52.Low != 80 {
		t.Errorf("52w range: expected 80-120, got %.0f-%.0f", w.Week52.Low, w.Week52.High)
	}
	if w.Week52.PositionPct != 75 {
		t.Errorf("52w position: expected 75, got %.1f", w.Week52.PositionPct)
	}

	// 3-month window covers the last three bars.
	if w.Month3.High != 120 || w.Month3.Low != 80 {
		t.Errorf("3m range: expected 80-120, got %.0f-%.0f", w.Month3.Low, w.Month3.High)
	}

	// 1-month window covers the last two bars; last close sits on the low.
	if w.Month1.High != 120 || w.Month1.Low != 110 {
		t.Errorf("1m range: expected 110-120, got %.0f-%.0f", w.Month1.Low, w.Month1.High)
	}
	if w.Month1.PositionPct != 0 {
		t.Errorf("1m position: expected 0, got %.1f", w.Month1.PositionPct)
	}
}

func TestAnalyze_FlatSeries(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	series := seriesAt(base,
		[]int{-300, -200, -100, -50, 0},
		[]float64{42, 42, 42, 42, 42})

	w, err := Analyze(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []model.RangeStats{w.Week52, w.Month3, w.Month1} {
		if s.PositionPct != 50 {
			t.Errorf("flat window: expected position 50, got %.1f", s.PositionPct)
		}
		if math.IsNaN(s.PositionPct) {
			t.Error("flat window: position is NaN")
		}
	}
	if w.AvgPositionPct != 50 {
		t.Errorf("flat series: expected average 50, got %.1f", w.AvgPositionPct)
	}
}

func TestAnalyze_InsufficientData(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		offsets []int
		closes  []float64
	}{
		{"empty", nil, nil},
		{"single bar", []int{0}, []float64{100}},
		{"too short for 1-month window", []int{-10, -5, 0}, []float64{100, 101, 102}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(seriesAt(base, tt.offsets, tt.closes))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if _, ok := err.(*AnalysisError); !ok {
				t.Errorf("expected *AnalysisError, got %T", err)
			}
		})
	}
}

func TestAnalyze_Invariants(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	series := seriesAt(base,
		[]int{-350, -200, -95, -60, -20, -3, 0},
		[]float64{88, 130, 95, 112, 101, 140, 99})

	w, err := Analyze(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []model.RangeStats{w.Week52, w.Month3, w.Month1} {
		if s.High < s.Low {
			t.Errorf("window high %.2f below low %.2f", s.High, s.Low)
		}
		if s.PositionPct < 0 || s.PositionPct > 100 {
			t.Errorf("position %.2f outside [0,100]", s.PositionPct)
		}
	}

	// Identical input must produce identical statistics.
	w2, err := Analyze(series)
	if err != nil {
		t.Fatalf("unexpected error on re-run: %v", err)
	}
	if !reflect.DeepEqual(w, w2) {
		t.Error("analysis is not deterministic for identical input")
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name               string
		current, high, low float64
		expected           float64
	}{
		{"midpoint", 100, 150, 50, 50},
		{"at low", 50, 150, 50, 0},
		{"at high", 150, 150, 50, 100},
		{"flat range", 80, 80, 80, 50},
		{"stale below range", 40, 150, 50, 0},
		{"stale above range", 200, 150, 50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Position(tt.current, tt.high, tt.low)
			if got != tt.expected {
				t.Errorf("Position(%.0f, %.0f, %.0f) = %.1f, expected %.1f",
					tt.current, tt.high, tt.low, got, tt.expected)
			}
		})
	}
}
