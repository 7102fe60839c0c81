package trialbalance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/statements/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balancedEntries() []model.LedgerEntry {
	return []model.LedgerEntry{
		{AccountNumber: "1000", AccountName: "Bank", Debit: dec("1500.00")},
		{AccountNumber: "7700", AccountName: "Salaries", Debit: dec("500.00")},
		{AccountNumber: "5000", AccountName: "Share Capital", Credit: dec("1000.00")},
		{AccountNumber: "6000", AccountName: "Sales", Credit: dec("1000.00")},
	}
}

func TestValidate_Balanced(t *testing.T) {
	res := Validate(balancedEntries())
	assert.True(t, res.IsBalanced)
	assert.True(t, dec("2000").Equal(res.TotalDebits), "debits %s", res.TotalDebits)
	assert.True(t, dec("2000").Equal(res.TotalCredits), "credits %s", res.TotalCredits)
	assert.True(t, res.Difference.IsZero())
}

func TestValidate_Skewed(t *testing.T) {
	entries := balancedEntries()
	entries[0].Debit = entries[0].Debit.Add(dec("100"))

	res := Validate(entries)
	assert.False(t, res.IsBalanced)
	assert.True(t, dec("100").Equal(res.Difference), "difference %s", res.Difference)
}

func TestValidate_CreditSkewIsNegative(t *testing.T) {
	entries := balancedEntries()
	entries[2].Credit = entries[2].Credit.Add(dec("25.50"))

	res := Validate(entries)
	assert.False(t, res.IsBalanced)
	assert.True(t, dec("-25.5").Equal(res.Difference), "difference %s", res.Difference)
}

func TestValidate_Tolerance(t *testing.T) {
	tests := []struct {
		skew string
		want bool
	}{
		{"0.001", true},
		{"0.009", true},
		{"0.01", false},
		{"-0.009", true},
		{"-0.01", false},
	}
	for _, tt := range tests {
		entries := balancedEntries()
		entries[0].Debit = entries[0].Debit.Add(dec(tt.skew))
		assert.Equal(t, tt.want, Validate(entries).IsBalanced, "skew %s", tt.skew)
	}
}

func TestValidateWithTolerance(t *testing.T) {
	entries := balancedEntries()
	entries[0].Debit = entries[0].Debit.Add(dec("0.5"))

	assert.False(t, Validate(entries).IsBalanced)
	assert.True(t, ValidateWithTolerance(entries, dec("1")).IsBalanced)
}

func TestValidate_NilInput(t *testing.T) {
	res := Validate(nil)
	assert.False(t, res.IsBalanced)
	assert.True(t, res.TotalDebits.IsZero())
	assert.True(t, res.TotalCredits.IsZero())
	assert.True(t, res.Difference.IsZero())
}

func TestValidate_EmptyInput(t *testing.T) {
	res := Validate([]model.LedgerEntry{})
	assert.True(t, res.IsBalanced)
}

func TestValidate_ZeroAmountsCount(t *testing.T) {
	entries := []model.LedgerEntry{
		{AccountNumber: "1000", Debit: model.ParseAmount("not a number")},
		{AccountNumber: "6000", Credit: model.ParseAmount("")},
	}
	res := Validate(entries)
	assert.True(t, res.IsBalanced)
}
