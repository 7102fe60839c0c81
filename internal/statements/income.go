package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

// ComprehensiveIncome builds the statement of comprehensive income from the
// revenue and expense entries. Each contributes the magnitude of its balance
// to its line; the subtotals are then derived in a fixed order.
func (b *Builder) ComprehensiveIncome(entries []model.LedgerEntry, overrides map[string]string) (model.ComprehensiveIncome, []Exclusion) {
	lines := make(map[string]decimal.Decimal)
	for _, k := range b.catalogue.Keys(lineitem.ComprehensiveIncome) {
		lines[k] = decimal.Zero
	}

	var excluded []Exclusion
	for i, e := range entries {
		typ, item := b.resolver.Resolve(e, overrides)
		if typ != model.AccountTypeRevenue && typ != model.AccountTypeExpense {
			excluded = append(excluded, exclude(i, e, typ, item, StatementComprehensiveIncome, ReasonNotIncomeAccount))
			continue
		}
		if item == "" {
			excluded = append(excluded, exclude(i, e, typ, item, StatementComprehensiveIncome, ReasonNoLineItem))
			continue
		}
		placement, ok := b.catalogue.Lookup(item)
		if !ok || placement.Section != lineitem.ComprehensiveIncome {
			excluded = append(excluded, exclude(i, e, typ, item, StatementComprehensiveIncome, ReasonNotInSection))
			continue
		}
		lines[item] = lines[item].Add(e.Balance.Abs())
	}

	ci := model.ComprehensiveIncome{
		Revenue:                line(lines, lineitem.Revenue),
		CostOfSales:            line(lines, lineitem.CostOfSales),
		OtherIncome:            line(lines, lineitem.OtherIncome),
		DistributionCosts:      line(lines, lineitem.DistributionCosts),
		AdministrativeExpenses: line(lines, lineitem.AdministrativeExpenses),
		OtherExpenses:          line(lines, lineitem.OtherExpenses),
		FinanceIncome:          line(lines, lineitem.FinanceIncome),
		FinanceCosts:           line(lines, lineitem.FinanceCosts),
		TaxExpense:             line(lines, lineitem.TaxExpense),
	}
	derive(&ci)
	return ci, excluded
}

// derive fills the subtotals. Each step reads only figures computed before it.
func derive(ci *model.ComprehensiveIncome) {
	ci.GrossProfit = ci.Revenue.Sub(ci.CostOfSales)
	ci.OperatingProfit = ci.GrossProfit.
		Sub(ci.AdministrativeExpenses).
		Sub(ci.DistributionCosts).
		Sub(ci.OtherExpenses).
		Add(ci.OtherIncome)
	ci.ProfitBeforeTax = ci.OperatingProfit.Add(ci.FinanceIncome).Sub(ci.FinanceCosts)
	ci.ProfitForYear = ci.ProfitBeforeTax.Sub(ci.TaxExpense)
}

func line(lines map[string]decimal.Decimal, key string) decimal.Decimal {
	if v, ok := lines[key]; ok {
		return v
	}
	return decimal.Zero
}
