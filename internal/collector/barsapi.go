package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"StockRadar/internal/model"
)

// BarsAPIFetcher implements Fetcher against a generic REST bars endpoint,
// for operators who proxy market data through their own service instead of
// hitting Yahoo directly.
type BarsAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewBarsAPIFetcher creates a new fetcher with optional proxy support.
func NewBarsAPIFetcher(baseURL, apiKey, proxyURL string, delay time.Duration) *BarsAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &BarsAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (f *BarsAPIFetcher) Name() string { return "barsapi" }

// apiBar is the expected JSON shape from the bars endpoint.
type apiBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// FetchDaily requests 370 daily bars, enough to span 52 calendar weeks.
func (f *BarsAPIFetcher) FetchDaily(ctx context.Context, symbol string) ([]model.OHLCV, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=370", f.BaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var apiBars []apiBar
	if err := json.NewDecoder(resp.Body).Decode(&apiBars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	if len(apiBars) == 0 {
		return nil, fmt.Errorf("fetch bars: empty response")
	}
	bars := make([]model.OHLCV, len(apiBars))
	for i, b := range apiBars {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
