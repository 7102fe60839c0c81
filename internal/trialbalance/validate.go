// Package trialbalance reads trial balances and checks that they balance.
package trialbalance

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

var defaultTolerance = decimal.New(1, -2)

// DefaultTolerance is the rounding allowance between total debits and
// credits: one cent.
func DefaultTolerance() decimal.Decimal {
	return defaultTolerance
}

// Result is the outcome of a balance check. Difference is debits minus
// credits.
type Result struct {
	IsBalanced   bool            `json:"isBalanced" yaml:"is_balanced"`
	TotalDebits  decimal.Decimal `json:"totalDebits" yaml:"total_debits"`
	TotalCredits decimal.Decimal `json:"totalCredits" yaml:"total_credits"`
	Difference   decimal.Decimal `json:"difference" yaml:"difference"`
}

// Validate checks that total debits equal total credits within one cent.
func Validate(entries []model.LedgerEntry) Result {
	return ValidateWithTolerance(entries, defaultTolerance)
}

// ValidateWithTolerance checks that |debits - credits| < tolerance. A nil
// slice means no trial balance was supplied and is never balanced; an empty
// one is.
func ValidateWithTolerance(entries []model.LedgerEntry, tolerance decimal.Decimal) Result {
	res := Result{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		Difference:   decimal.Zero,
	}
	if entries == nil {
		return res
	}

	for _, e := range entries {
		res.TotalDebits = res.TotalDebits.Add(e.Debit)
		res.TotalCredits = res.TotalCredits.Add(e.Credit)
	}
	res.Difference = res.TotalDebits.Sub(res.TotalCredits)
	res.IsBalanced = res.Difference.Abs().LessThan(tolerance)
	return res
}
