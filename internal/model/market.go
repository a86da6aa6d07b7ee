package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Symbol pairs an exchange ticker with its human display name.
type Symbol struct {
	Ticker string
	Name   string
}

// PriceSeries holds raw daily price data for one symbol, ascending by date.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	Source    string
	FetchedAt time.Time
}

// LastClose returns the closing price of the most recent bar, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}

// LastDate returns the date of the most recent bar, or the zero time for an empty series.
func (s *PriceSeries) LastDate() time.Time {
	if len(s.Bars) == 0 {
		return time.Time{}
	}
	return s.Bars[len(s.Bars)-1].Time
}
