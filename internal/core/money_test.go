package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFromDecimal(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"1", 100},
		{"1.23", 123},
		{"19.995", 2000}, // half-up on the third decimal
		{"12.344", 1234},
		{"12.345", 1235},
		{"0", 0},
		{"-5.678", -568},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tc.in, err)
		}
		if got := MoneyFromDecimal(d); got.Cents != tc.cents {
			t.Errorf("MoneyFromDecimal(%s) = %d cents, want %d", tc.in, got.Cents, tc.cents)
		}
	}
}

func TestParseMoney(t *testing.T) {
	fallback := MoneyFromCents(4200)
	cases := []struct {
		in    string
		cents int64
	}{
		{"1234.56", 123456},
		{"1234,56", 123456}, // comma separator
		{" 10 ", 1000},
		{"", 4200},      // blank -> fallback
		{"abc", 4200},   // non-numeric -> fallback
		{"1.2.3", 4200}, // malformed -> fallback
		{"-5", -500},
	}
	for _, tc := range cases {
		if got := ParseMoney(tc.in, fallback); got.Cents != tc.cents {
			t.Errorf("ParseMoney(%q) = %d cents, want %d", tc.in, got.Cents, tc.cents)
		}
	}
}

func TestNormalizeMoney(t *testing.T) {
	cases := []struct {
		name          string
		in            string
		allowNegative bool
		cents         int64
	}{
		{"rounds half up", "19.995", false, 2000},
		{"clamps negative", "-5", false, 0},
		{"keeps negative when allowed", "-5", true, -500},
		{"blank uses fallback", "", false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeMoney(tc.in, Money{}, tc.allowNegative)
			if got.Cents != tc.cents {
				t.Errorf("NormalizeMoney(%q, allowNegative=%v) = %d cents, want %d", tc.in, tc.allowNegative, got.Cents, tc.cents)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{123456, "1234.56"},
		{0, "0.00"},
		{-50, "-0.50"},
		{100, "1.00"},
	}
	for _, tc := range cases {
		if got := MoneyFromCents(tc.cents).String(); got != tc.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestSumNetRows(t *testing.T) {
	rows := []NetRow{
		{WorkerName: "A", NetAmount: decimal.RequireFromString("1000.50")},
		{WorkerName: "B", NetAmount: decimal.RequireFromString("999.50")},
		{WorkerName: "C", NetAmount: decimal.RequireFromString("-12")}, // clamped
	}
	if got := SumNetRows(rows); got.Cents != 200000 {
		t.Errorf("SumNetRows = %d cents, want 200000", got.Cents)
	}
	if got := SumNetRows(nil); !got.IsZero() {
		t.Errorf("SumNetRows(nil) = %d cents, want 0", got.Cents)
	}
}
