package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	return NewClient(endpoint, time.Second, zerolog.Nop())
}

func TestFetchRemoteRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"USD": 1, "EUR": 0.91, "GBP": 0.78}}`))
	}))
	defer srv.Close()

	rates := newTestClient(srv.URL).Fetch(context.Background())
	require.Len(t, rates, 3)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.91")))
	assert.True(t, rates["USD"].Equal(decimal.NewFromInt(1)))
}

func TestFetchFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}},
		{"missing rates field", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base": "USD"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			rates := newTestClient(srv.URL).Fetch(context.Background())
			assert.Equal(t, Fallback(), rates)
		})
	}
}

func TestFetchUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	rates := newTestClient(srv.URL).Fetch(context.Background())
	assert.Equal(t, Fallback(), rates)
}

func TestFallbackTable(t *testing.T) {
	fb := Fallback()
	require.Len(t, fb, 4)
	for _, code := range []string{"USD", "INR", "PKR", "JPY"} {
		assert.Contains(t, fb, code)
	}
	assert.True(t, fb["USD"].Equal(decimal.NewFromInt(1)))
	assert.True(t, fb["INR"].Equal(decimal.NewFromInt(74)))
	assert.True(t, fb["PKR"].Equal(decimal.NewFromInt(160)))
	assert.True(t, fb["JPY"].Equal(decimal.NewFromInt(110)))
}

func TestCurrenciesSorted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": {"JPY": 110, "EUR": 0.91, "AUD": 1.5}}`))
	}))
	defer srv.Close()

	codes := newTestClient(srv.URL).Currencies(context.Background())
	assert.Equal(t, []string{"AUD", "EUR", "JPY"}, codes)
}

func TestCurrenciesFallbackSorted(t *testing.T) {
	codes := newTestClient("http://127.0.0.1:0").Currencies(context.Background())
	assert.Equal(t, []string{"INR", "JPY", "PKR", "USD"}, codes)
}
