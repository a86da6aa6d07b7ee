package collector

import (
	"context"
	"errors"
	"log"
	"time"

	"StockRadar/internal/calculator"
	"StockRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars   map[string][]model.OHLCV // per-ticker data; falls back to generated bars
	Price  float64
	Errors map[string]error // per-ticker forced failures
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(_ context.Context, symbol string) ([]model.OHLCV, error) {
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, 260), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector runs the per-symbol fetch and analysis pipeline.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches price data for one symbol and computes its range statistics.
func (c *Collector) Collect(ctx context.Context, sym model.Symbol) (*model.AnalysisResult, error) {
	bars, err := c.Fetcher.FetchDaily(ctx, sym.Ticker)
	if err != nil {
		return nil, &FetchError{Symbol: sym.Ticker, Err: err}
	}
	if len(bars) == 0 {
		return nil, &FetchError{Symbol: sym.Ticker, Err: errors.New("empty series")}
	}

	series := &model.PriceSeries{
		Symbol:    sym.Ticker,
		Bars:      bars,
		Source:    c.Fetcher.Name(),
		FetchedAt: time.Now(),
	}

	windows, err := calculator.Analyze(series)
	if err != nil {
		return nil, err
	}

	return &model.AnalysisResult{
		Symbol:         sym.Ticker,
		Name:           sym.Name,
		CurrentPrice:   series.LastClose(),
		Week52:         windows.Week52,
		Month3:         windows.Month3,
		Month1:         windows.Month1,
		AvgPositionPct: windows.AvgPositionPct,
		Source:         series.Source,
		FetchedAt:      series.FetchedAt,
	}, nil
}

// CollectAll processes every symbol in order and returns one tagged outcome
// per symbol. A failed symbol is logged and carried as a failure outcome;
// it never halts the remaining symbols. The fetcher's rate limiter enforces
// the spacing between provider calls.
func (c *Collector) CollectAll(ctx context.Context, symbols []model.Symbol) []model.Outcome {
	outcomes := make([]model.Outcome, 0, len(symbols))
	for _, sym := range symbols {
		log.Printf("[INFO] analyzing %s (%s)", sym.Ticker, sym.Name)
		result, err := c.Collect(ctx, sym)
		if err != nil {
			log.Printf("[WARN] %s skipped: %v", sym.Ticker, err)
			outcomes = append(outcomes, model.Outcome{Symbol: sym.Ticker, Name: sym.Name, Err: err})
			continue
		}
		log.Printf("[INFO] %s: price %.2f, 52w position %.1f%%", sym.Ticker, result.CurrentPrice, result.Week52.PositionPct)
		outcomes = append(outcomes, model.Outcome{Symbol: sym.Ticker, Name: sym.Name, Result: result})
	}
	return outcomes
}
