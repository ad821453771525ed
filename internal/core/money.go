// Package core holds the domain types of the monthly ledger: periods,
// budget scopes and fixed-point money.
//
// All arithmetic runs on integer cents so that chained carry-over
// additions never accumulate floating-point drift. Decimal values only
// appear at the interface boundary (JSON, spreadsheets).
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in integer cents (MAD).
type Money struct {
	Cents int64
}

var centsFactor = decimal.NewFromInt(100)

// MoneyFromDecimal converts a decimal amount to cents with half-up
// rounding on the third decimal place.
//
// Examples:
//
//	MoneyFromDecimal(19.995) -> 2000 cents
//	MoneyFromDecimal(12.344) -> 1234 cents
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Cents: d.Mul(centsFactor).Round(0).IntPart()}
}

// MoneyFromCents wraps raw cents.
func MoneyFromCents(cents int64) Money {
	return Money{Cents: cents}
}

// ParseMoney coerces a loosely-typed amount string into Money. It accepts
// both dot and comma decimal separators. Blank or non-numeric input yields
// the fallback; the function never fails. Messy historical data is
// tolerated rather than rejected.
func ParseMoney(s string, fallback Money) Money {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return MoneyFromDecimal(d)
}

// Decimal returns the amount as a 2-decimal value for the boundary.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.Cents).Div(centsFactor)
}

// String formats the amount with two decimals, e.g. "1234.56".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Clamped floors the amount at zero.
func (m Money) Clamped() Money {
	if m.Cents < 0 {
		return Money{}
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

// NormalizeMoney coerces an amount string to Money and optionally clamps
// negatives to zero. It is the total coercion function used when reading
// caller-supplied figures: nothing it receives makes it fail.
func NormalizeMoney(s string, fallback Money, allowNegative bool) Money {
	m := ParseMoney(s, fallback)
	if !allowNegative {
		return m.Clamped()
	}
	return m
}
