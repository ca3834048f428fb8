// Package money provides currency-safe amounts for ledger drafts using
// integer minor units. It wraps go-money for arithmetic and
// shopspring/decimal for precise conversions of parsed text amounts.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Common currency codes (ISO-4217)
const (
	USD = "USD"
	EUR = "EUR"
	BRL = "BRL"
)

// Money represents a monetary value with currency.
type Money struct {
	m *money.Money
}

// New creates a Money value from minor units (cents) and a currency code.
func New(amountCents int64, currencyCode string) *Money {
	return &Money{m: money.New(amountCents, currencyCode)}
}

// NewFromDecimal creates Money from a decimal amount in major units.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(USD)
	}

	multiplier := decimal.New(1, int32(currency.Fraction))
	cents := amount.Mul(multiplier).Round(0).IntPart()

	return New(cents, currencyCode)
}

// ParseDecimal parses a textual amount into a decimal rounded to two
// fraction digits. Both "10.50" and "10,50" decimal forms are accepted;
// a single comma with no dot is treated as the decimal separator.
func ParseDecimal(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	amount = strings.ReplaceAll(amount, " ", "")

	for _, sym := range []string{"R$", "$", "€", "£"} {
		amount = strings.ReplaceAll(amount, sym, "")
	}

	// Comma-decimal form: 10,50 -> 10.50
	if strings.Count(amount, ",") == 1 && !strings.Contains(amount, ".") {
		amount = strings.Replace(amount, ",", ".", 1)
	} else {
		amount = strings.ReplaceAll(amount, ",", "")
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	return d.Round(2), nil
}

// Zero returns a zero Money value for the given currency.
func Zero(currencyCode string) *Money {
	return New(0, currencyCode)
}

// Amount returns the amount in minor units (cents).
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (m *Money) IsPositive() bool {
	return m != nil && m.m != nil && m.m.IsPositive()
}

// Add adds two Money values. Returns error if currencies don't match.
func (m *Money) Add(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		return other, nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}

	result, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: result}, nil
}

// Equals reports whether two Money values have the same amount and currency.
func (m *Money) Equals(other *Money) bool {
	if m == nil || m.m == nil || other == nil || other.m == nil {
		return m.IsZero() && other.IsZero()
	}
	ok, err := m.m.Equals(other.m)
	return err == nil && ok
}

// ToDecimal converts the amount to a decimal in major units.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	currency := m.m.Currency()
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(currency.Fraction))
	return d.Div(divisor)
}

// Split divides money into n equal parts, distributing the remainder to the
// first parts so no cent is lost.
func (m *Money) Split(n int) ([]*Money, error) {
	if m == nil || m.m == nil {
		return nil, errors.New("cannot split nil money")
	}
	if n <= 0 {
		return nil, errors.New("n must be positive")
	}

	parts, err := m.m.Split(n)
	if err != nil {
		return nil, err
	}

	result := make([]*Money, len(parts))
	for i, p := range parts {
		result[i] = &Money{m: p}
	}
	return result, nil
}

// Display returns the amount formatted with its currency symbol.
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Display()
}

// String implements fmt.Stringer.
func (m *Money) String() string {
	return m.Display()
}
