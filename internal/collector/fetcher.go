package collector

import (
	"context"
	"fmt"

	"StockRadar/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
// FetchDaily returns at least 52 weeks of daily bars in ascending date order.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string) ([]model.OHLCV, error)
	Name() string
}

// FetchError indicates that price data could not be obtained for a symbol,
// whether from a network failure, a provider error, or an empty response.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
