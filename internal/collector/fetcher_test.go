package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestYahooTicker_Suffix(t *testing.T) {
	f := NewYahooFetcher(".NS", "", 0)

	tests := []struct {
		in, want string
	}{
		{"RELIANCE", "RELIANCE.NS"},
		{"BAJAJ-AUTO", "BAJAJ-AUTO.NS"},
		{"TCS.BO", "TCS.BO"}, // already qualified
	}
	for _, tt := range tests {
		if got := f.yahooTicker(tt.in); got != tt.want {
			t.Errorf("yahooTicker(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}

	bare := NewYahooFetcher("", "", 0)
	if got := bare.yahooTicker("AAPL"); got != "AAPL" {
		t.Errorf("expected no suffix appended, got %q", got)
	}
}

func TestBarsAPIFetcher_FetchDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "RELIANCE" {
			t.Errorf("expected symbol RELIANCE, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", got)
		}
		// Deliberately out of order to exercise the sort.
		w.Write([]byte(`[
			{"timestamp": 1700086400, "open": 101, "high": 103, "low": 100, "close": 102, "volume": 500},
			{"timestamp": 1700000000, "open": 100, "high": 102, "low": 99, "close": 101, "volume": 400}
		]`))
	}))
	defer srv.Close()

	f := NewBarsAPIFetcher(srv.URL, "test-key", "", 0)
	bars, err := f.FetchDaily(context.Background(), "RELIANCE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not sorted ascending by date")
	}
	if bars[0].Close != 101 || bars[1].Close != 102 {
		t.Errorf("unexpected closes: %.0f, %.0f", bars[0].Close, bars[1].Close)
	}
}

func TestBarsAPIFetcher_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"empty response", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewBarsAPIFetcher(srv.URL, "", "", 0)
			if _, err := f.FetchDaily(context.Background(), "RELIANCE"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
