// internal/domain/currency/entity.go
package currency

import "time"

// ExchangeRate is one stored rate row. Rate is expressed as units of Code
// per 1 USD, so converting to USD divides by it.
type ExchangeRate struct {
	Code      string    `json:"code" db:"code"`
	Rate      float64   `json:"rate" db:"rate"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RateTable maps currency code to units-per-USD.
type RateTable map[string]float64

// ConvertToUSD applies the one-hop conversion rule: USD amounts pass through
// unchanged, a missing rate falls back to 1:1. The table's base currency is
// assumed to be USD; refresh validation rejects non-positive rates so this
// never divides by zero.
func (t RateTable) ConvertToUSD(amount float64, code string) float64 {
	if code == "" || code == "USD" {
		return amount
	}
	rate, ok := t[code]
	if !ok || rate == 0 {
		return amount
	}
	return amount / rate
}
