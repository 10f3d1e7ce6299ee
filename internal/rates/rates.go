// Package rates fetches currency exchange rates from a remote service.
// The system uses the result only to validate currency codes; no
// conversion arithmetic happens anywhere.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultEndpoint is the USD-based rate feed queried when no endpoint is
// configured.
const DefaultEndpoint = "https://api.exchangerate-api.com/v4/latest/USD"

const defaultTimeout = 10 * time.Second

// Rates maps a currency code to its rate against the base currency.
type Rates map[string]decimal.Decimal

// Client fetches rates over HTTP. Every call performs one GET; results
// are never cached or persisted, and there are no retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a rate client for the given endpoint. A non-positive
// timeout falls back to 10 seconds.
func NewClient(endpoint string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

// Fallback returns the fixed rate table served when the remote service
// cannot be reached.
func Fallback() Rates {
	return Rates{
		"USD": decimal.NewFromInt(1),
		"INR": decimal.NewFromInt(74),
		"PKR": decimal.NewFromInt(160),
		"JPY": decimal.NewFromInt(110),
	}
}

// Fetch returns the current rate table. On any transport, status, or
// decode failure it logs a diagnostic and returns the fallback table;
// the caller never sees an error.
func (c *Client) Fetch(ctx context.Context) Rates {
	rates, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", c.endpoint).Msg("rate fetch failed, using fallback table")
		return Fallback()
	}
	return rates
}

func (c *Client) fetch(ctx context.Context) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate service returned %s", resp.Status)
	}

	var body struct {
		Rates Rates `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding rates: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate service returned no rates")
	}
	return body.Rates, nil
}

// Currencies returns the sorted currency codes currently known to the
// rate service (or the fallback table when it is unreachable).
func (c *Client) Currencies(ctx context.Context) []string {
	rates := c.Fetch(ctx)
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
