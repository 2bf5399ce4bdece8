// internal/service/currency/provider.go
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"farepass-service/internal/domain/currency"
)

// RateProvider fetches a fresh USD-based rate table from an external source.
type RateProvider interface {
	Fetch(ctx context.Context) (currency.RateTable, error)
}

// HTTPRateProvider pulls rates from a JSON endpoint shaped like
// {"base":"USD","rates":{"EUR":0.92,...}}, the common format of the hosted
// rate APIs.
type HTTPRateProvider struct {
	url    string
	client *http.Client
}

func NewHTTPRateProvider(url string) *HTTPRateProvider {
	return &HTTPRateProvider{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *HTTPRateProvider) Fetch(ctx context.Context) (currency.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates payload: %w", err)
	}

	// The conversion rule assumes a USD base; refuse anything else rather
	// than silently producing wrong conversions.
	if payload.Base != "" && payload.Base != "USD" {
		return nil, fmt.Errorf("rates endpoint base is %q, expected USD", payload.Base)
	}

	table := currency.RateTable{}
	for code, rate := range payload.Rates {
		if rate <= 0 {
			continue
		}
		table[code] = rate
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("rates payload contained no usable rates")
	}

	return table, nil
}
