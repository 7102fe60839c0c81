package model

import "github.com/shopspring/decimal"

// Section is one block of the statement of financial position: a figure per
// catalogue line item plus the section total.
type Section struct {
	Lines map[string]decimal.Decimal `json:"lines" yaml:"lines"`
	Total decimal.Decimal            `json:"total" yaml:"total"`
}

// Line returns the figure for key, zero when the key is absent.
func (s Section) Line(key string) decimal.Decimal {
	if v, ok := s.Lines[key]; ok {
		return v
	}
	return decimal.Zero
}

// FinancialPosition is the statement of financial position (balance sheet).
type FinancialPosition struct {
	CurrentAssets             Section         `json:"currentAssets" yaml:"current_assets"`
	NonCurrentAssets          Section         `json:"nonCurrentAssets" yaml:"non_current_assets"`
	Equity                    Section         `json:"equity" yaml:"equity"`
	CurrentLiabilities        Section         `json:"currentLiabilities" yaml:"current_liabilities"`
	NonCurrentLiabilities     Section         `json:"nonCurrentLiabilities" yaml:"non_current_liabilities"`
	TotalAssets               decimal.Decimal `json:"totalAssets" yaml:"total_assets"`
	TotalEquityAndLiabilities decimal.Decimal `json:"totalEquityAndLiabilities" yaml:"total_equity_and_liabilities"`
}

// TotalLiabilities is current plus non-current liabilities.
func (p FinancialPosition) TotalLiabilities() decimal.Decimal {
	return p.CurrentLiabilities.Total.Add(p.NonCurrentLiabilities.Total)
}

// ComprehensiveIncome is the single-period statement of comprehensive income.
type ComprehensiveIncome struct {
	Revenue                decimal.Decimal `json:"revenue" yaml:"revenue"`
	CostOfSales            decimal.Decimal `json:"cost_of_sales" yaml:"cost_of_sales"`
	GrossProfit            decimal.Decimal `json:"gross_profit" yaml:"gross_profit"`
	OtherIncome            decimal.Decimal `json:"other_income" yaml:"other_income"`
	DistributionCosts      decimal.Decimal `json:"distribution_costs" yaml:"distribution_costs"`
	AdministrativeExpenses decimal.Decimal `json:"administrative_expenses" yaml:"administrative_expenses"`
	OtherExpenses          decimal.Decimal `json:"other_expenses" yaml:"other_expenses"`
	OperatingProfit        decimal.Decimal `json:"operating_profit" yaml:"operating_profit"`
	FinanceIncome          decimal.Decimal `json:"finance_income" yaml:"finance_income"`
	FinanceCosts           decimal.Decimal `json:"finance_costs" yaml:"finance_costs"`
	ProfitBeforeTax        decimal.Decimal `json:"profit_before_tax" yaml:"profit_before_tax"`
	TaxExpense             decimal.Decimal `json:"tax_expense" yaml:"tax_expense"`
	ProfitForYear          decimal.Decimal `json:"profit_for_year" yaml:"profit_for_year"`
}
