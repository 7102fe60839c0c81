// Package rates holds the South African tax and payroll levy rates and the
// calculations that use them.
package rates

import "github.com/shopspring/decimal"

// Rates is an immutable set of levy rates. Construct it once and pass it by
// value.
type Rates struct {
	CorporateTaxRate  decimal.Decimal
	VATRate           decimal.Decimal
	SDLRate           decimal.Decimal
	SDLThreshold      decimal.Decimal // annual payroll above which SDL applies
	UIFRate           decimal.Decimal // per party
	UIFMonthlyCeiling decimal.Decimal
}

// Default returns the current South African rates.
func Default() Rates {
	return Rates{
		CorporateTaxRate:  decimal.RequireFromString("0.27"),
		VATRate:           decimal.RequireFromString("0.15"),
		SDLRate:           decimal.RequireFromString("0.01"),
		SDLThreshold:      decimal.NewFromInt(500000),
		UIFRate:           decimal.RequireFromString("0.01"),
		UIFMonthlyCeiling: decimal.NewFromInt(17712),
	}
}

// CorporateTax returns income tax on taxable profit. Losses attract no tax.
func (r Rates) CorporateTax(profit decimal.Decimal) decimal.Decimal {
	if !profit.IsPositive() {
		return decimal.Zero
	}
	return profit.Mul(r.CorporateTaxRate).Round(2)
}

// VAT returns output VAT on a VAT-exclusive amount.
func (r Rates) VAT(exclusive decimal.Decimal) decimal.Decimal {
	return exclusive.Mul(r.VATRate).Round(2)
}

// VATFromInclusive extracts the VAT portion of a VAT-inclusive amount.
func (r Rates) VATFromInclusive(inclusive decimal.Decimal) decimal.Decimal {
	return inclusive.Mul(r.VATRate).Div(decimal.NewFromInt(1).Add(r.VATRate)).Round(2)
}

// SDL returns the skills development levy on an annual payroll. Employers at
// or below the threshold are exempt.
func (r Rates) SDL(annualPayroll decimal.Decimal) decimal.Decimal {
	if !annualPayroll.GreaterThan(r.SDLThreshold) {
		return decimal.Zero
	}
	return annualPayroll.Mul(r.SDLRate).Round(2)
}

// UIF returns the employee and employer unemployment insurance contributions
// on one month's remuneration.
func (r Rates) UIF(monthlyRemuneration decimal.Decimal) (employee, employer decimal.Decimal) {
	if !monthlyRemuneration.IsPositive() {
		return decimal.Zero, decimal.Zero
	}
	base := decimal.Min(monthlyRemuneration, r.UIFMonthlyCeiling)
	c := base.Mul(r.UIFRate).Round(2)
	return c, c
}
