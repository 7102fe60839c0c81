package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	f := Default()

	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "R 1,234.56"},
		{"-1234.56", "-R 1,234.56"},
		{"0", "R 0.00"},
		{"1000000", "R 1,000,000.00"},
		{"12.345", "R 12.35"},
		{"-0.001", "R 0.00"},
		{"12345678901234567.89", "R 12,345,678,901,234,567.89"},
		{"-9007199254740993.01", "-R 9,007,199,254,740,993.01"},
		{"100", "R 100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Currency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestCurrency_NoSymbol(t *testing.T) {
	f := New("en", "")
	assert.Equal(t, "-42.00", f.Currency(decimal.NewFromInt(-42)))
}

func TestAmount(t *testing.T) {
	f := New("not a locale!", "R")
	assert.Equal(t, "9,876.50", f.Amount(decimal.RequireFromString("9876.5")))
	assert.Equal(t, "-9,876.50", f.Amount(decimal.RequireFromString("-9876.5")))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "27.0%", Percent(decimal.RequireFromString("0.27"), 1))
	assert.Equal(t, "66.67%", Percent(decimal.RequireFromString("0.6667"), 2))
	assert.Equal(t, "-15%", Percent(decimal.RequireFromString("-0.15"), 0))
}

func TestAmount_Locale(t *testing.T) {
	f := New("de", "")
	assert.Equal(t, "1.234.567,89", f.Amount(decimal.RequireFromString("1234567.89")))
}
