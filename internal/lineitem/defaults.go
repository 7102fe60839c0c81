package lineitem

// Line item keys of the default catalogue.
const (
	Cash             = "cash"
	TradeReceivables = "trade_receivables"
	Inventories      = "inventories"
	Prepayments      = "prepayments"
	OtherReceivables = "other_receivables"

	PropertyPlantEquipment = "property_plant_equipment"
	IntangibleAssets       = "intangible_assets"
	Investments            = "investments"
	DeferredTaxAsset       = "deferred_tax_asset"

	ShareCapital     = "share_capital"
	RetainedEarnings = "retained_earnings"
	OtherReserves    = "other_reserves"

	TradePayables       = "trade_payables"
	ShortTermBorrowings = "short_term_borrowings"
	CurrentTaxPayable   = "current_tax_payable"
	Provisions          = "provisions"
	OtherPayables       = "other_payables"

	LongTermBorrowings   = "long_term_borrowings"
	LeaseLiabilities     = "lease_liabilities"
	DeferredTaxLiability = "deferred_tax_liability"

	Revenue                = "revenue"
	CostOfSales            = "cost_of_sales"
	OtherIncome            = "other_income"
	DistributionCosts      = "distribution_costs"
	AdministrativeExpenses = "administrative_expenses"
	OtherExpenses          = "other_expenses"
	FinanceIncome          = "finance_income"
	FinanceCosts           = "finance_costs"
	TaxExpense             = "tax_expense"
)

// DefaultItems lists the default catalogue in presentation order.
func DefaultItems() []Item {
	return []Item{
		{Cash, CurrentAssets},
		{TradeReceivables, CurrentAssets},
		{Inventories, CurrentAssets},
		{Prepayments, CurrentAssets},
		{OtherReceivables, CurrentAssets},

		{PropertyPlantEquipment, NonCurrentAssets},
		{IntangibleAssets, NonCurrentAssets},
		{Investments, NonCurrentAssets},
		{DeferredTaxAsset, NonCurrentAssets},

		{ShareCapital, Equity},
		{RetainedEarnings, Equity},
		{OtherReserves, Equity},

		{TradePayables, CurrentLiabilities},
		{ShortTermBorrowings, CurrentLiabilities},
		{CurrentTaxPayable, CurrentLiabilities},
		{Provisions, CurrentLiabilities},
		{OtherPayables, CurrentLiabilities},

		{LongTermBorrowings, NonCurrentLiabilities},
		{LeaseLiabilities, NonCurrentLiabilities},
		{DeferredTaxLiability, NonCurrentLiabilities},

		{Revenue, ComprehensiveIncome},
		{CostOfSales, ComprehensiveIncome},
		{OtherIncome, ComprehensiveIncome},
		{DistributionCosts, ComprehensiveIncome},
		{AdministrativeExpenses, ComprehensiveIncome},
		{OtherExpenses, ComprehensiveIncome},
		{FinanceIncome, ComprehensiveIncome},
		{FinanceCosts, ComprehensiveIncome},
		{TaxExpense, ComprehensiveIncome},
	}
}

// Default returns the default catalogue.
func Default() *Catalogue {
	c, err := New(DefaultItems())
	if err != nil {
		panic("lineitem: invalid default catalogue: " + err.Error())
	}
	return c
}
