package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"StockRadar/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
// A shared rate limiter spaces out requests to stay under provider limits;
// all fetching is sequential, so the limiter acts as a flat inter-call delay.
type YahooFetcher struct {
	Client  *http.Client
	Suffix  string // exchange suffix appended to tickers, e.g. ".NS"
	limiter *rate.Limiter
}

// NewYahooFetcher creates a new Yahoo Finance fetcher. delay is the minimum
// spacing between consecutive requests.
func NewYahooFetcher(suffix, proxyURL string, delay time.Duration) *YahooFetcher {
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
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Suffix:  suffix,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooTicker qualifies a bare ticker with the exchange suffix. Tickers that
// already carry a suffix (contain a dot) are passed through unchanged.
func (f *YahooFetcher) yahooTicker(symbol string) string {
	if f.Suffix == "" || strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + f.Suffix
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchDaily retrieves one year of daily bars, covering the 52-week window.
func (f *YahooFetcher) FetchDaily(ctx context.Context, symbol string) ([]model.OHLCV, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1y",
		url.PathEscape(f.yahooTicker(symbol)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data returned")
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
