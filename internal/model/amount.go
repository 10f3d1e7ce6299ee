package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary quantity. It carries no currency; a transaction's
// amount is implicitly in its owning account's currency.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// ParseAmount parses a decimal string like "4.5" or "-12".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return Amount{d}, nil
}

// MarshalJSON emits a bare JSON number. The ledger file stores budget and
// amount fields as numbers, not strings, which is not decimal's default.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", s, err)
	}
	a.Decimal = d
	return nil
}
