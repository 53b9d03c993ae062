package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept for monetary values.
const AmountScale = 2

// maxAmount mirrors NUMERIC(10,2).
var maxAmount = decimal.RequireFromString("99999999.99")

// Amount is a fixed-point monetary value. It renders with exactly two
// fractional digits and never passes through binary floating point.
type Amount struct {
	decimal.Decimal
}

// ZeroAmount returns 0.00.
func ZeroAmount() Amount { return Amount{Decimal: decimal.Zero} }

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

// MustAmount parses s and panics on failure. Intended for fixtures.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAmount parses a decimal string with at most two fractional digits.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("amount %q is not a decimal number", s)
	}
	if d.Exponent() < -AmountScale && !d.Equal(d.Round(AmountScale)) {
		return Amount{}, fmt.Errorf("amount %q has more than %d fractional digits", s, AmountScale)
	}
	if d.Abs().GreaterThan(maxAmount) {
		return Amount{}, fmt.Errorf("amount %q exceeds %s", s, maxAmount.StringFixed(AmountScale))
	}
	return Amount{Decimal: d}, nil
}

// ParsePositiveAmount is ParseAmount restricted to values above zero.
func ParsePositiveAmount(s string) (Amount, error) {
	a, err := ParseAmount(s)
	if err != nil {
		return Amount{}, err
	}
	if !a.IsPositive() {
		return Amount{}, fmt.Errorf("amount must be greater than zero")
	}
	return a, nil
}

// MaxAmount is the largest value a monetary column can hold.
func MaxAmount() Amount { return Amount{Decimal: maxAmount} }

// ExceedsMax reports whether a no longer fits a monetary column.
func (a Amount) ExceedsMax() bool { return a.Abs().GreaterThan(maxAmount) }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return Amount{Decimal: a.Decimal.Add(b.Decimal)} }

// Equal reports whether both values are numerically equal.
func (a Amount) Equal(b Amount) bool { return a.Decimal.Equal(b.Decimal) }

func (a Amount) String() string { return a.StringFixed(AmountScale) }

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.Decimal.UnmarshalJSON(b)
}

// Value stores the amount as a fixed-point string so NUMERIC columns never
// see a float.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src interface{}) error {
	return a.Decimal.Scan(src)
}
