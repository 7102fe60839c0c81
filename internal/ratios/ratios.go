// Package ratios derives liquidity, profitability and leverage ratios from a
// completed pair of statements.
package ratios

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

// Ratio names.
const (
	CurrentRatio      = "currentRatio"
	QuickRatio        = "quickRatio"
	GrossProfitMargin = "grossProfitMargin"
	NetProfitMargin   = "netProfitMargin"
	ReturnOnAssets    = "returnOnAssets"
	ReturnOnEquity    = "returnOnEquity"
	DebtToEquityRatio = "debtToEquityRatio"
)

// Places is the number of decimal places ratios are rounded to.
const Places = 4

// Ratios maps a ratio name to its value. A missing key means the ratio is not
// computable for these statements.
type Ratios map[string]decimal.Decimal

// Get returns a ratio and whether it was computable.
func (r Ratios) Get(name string) (decimal.Decimal, bool) {
	v, ok := r[name]
	return v, ok
}

// Names returns the computed ratio names, sorted.
func (r Ratios) Names() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Compute derives every ratio whose denominator is strictly positive.
func Compute(position model.FinancialPosition, income model.ComprehensiveIncome) Ratios {
	r := make(Ratios)

	currentAssets := position.CurrentAssets.Total
	currentLiabilities := position.CurrentLiabilities.Total
	if currentLiabilities.IsPositive() {
		r[CurrentRatio] = div(currentAssets, currentLiabilities)
		quickAssets := currentAssets.Sub(position.CurrentAssets.Line(lineitem.Inventories))
		r[QuickRatio] = div(quickAssets, currentLiabilities)
	}

	if income.Revenue.IsPositive() {
		r[GrossProfitMargin] = div(income.GrossProfit, income.Revenue)
		r[NetProfitMargin] = div(income.ProfitForYear, income.Revenue)
	}

	if position.TotalAssets.IsPositive() {
		r[ReturnOnAssets] = div(income.ProfitForYear, position.TotalAssets)
	}

	equity := position.Equity.Total
	if equity.IsPositive() {
		r[ReturnOnEquity] = div(income.ProfitForYear, equity)
		r[DebtToEquityRatio] = div(position.TotalLiabilities(), equity)
	}

	return r
}

func div(num, den decimal.Decimal) decimal.Decimal {
	return num.DivRound(den, Places)
}
