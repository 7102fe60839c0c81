package accounts

import (
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

// TypeRange maps an inclusive account-number range to an account type.
type TypeRange struct {
	Low, High int
	Type      model.AccountType
}

// ItemRange maps an inclusive account-number range to a line item.
type ItemRange struct {
	Low, High int
	Item      string
}

// KeywordRule suggests Item when a lower-cased account name contains every
// AllOf word and, if AnyOf is set, at least one AnyOf word.
type KeywordRule struct {
	AllOf []string
	AnyOf []string
	Item  string
}

// Rules holds the classification tables. Treat a Rules value as read-only
// once handed to NewClassifier.
type Rules struct {
	TypeRanges []TypeRange
	// ByThousands is the fallback type indexed by the thousands digit.
	ByThousands [10]model.AccountType
	ItemRanges  []ItemRange
	Keywords    []KeywordRule
}

// DefaultRules returns the standard numbering scheme:
// 1xxx-2xxx assets, 3xxx-4xxx liabilities, 5xxx equity, 6xxx revenue,
// 7xxx-8xxx expenses.
func DefaultRules() Rules {
	return Rules{
		TypeRanges: []TypeRange{
			{1000, 2999, model.AccountTypeAsset},
			{3000, 4999, model.AccountTypeLiability},
			{5000, 5999, model.AccountTypeEquity},
			{6000, 6999, model.AccountTypeRevenue},
			{7000, 8999, model.AccountTypeExpense},
		},
		ByThousands: [10]model.AccountType{
			0: model.AccountTypeUnknown,
			1: model.AccountTypeAsset,
			2: model.AccountTypeAsset,
			3: model.AccountTypeLiability,
			4: model.AccountTypeLiability,
			5: model.AccountTypeEquity,
			6: model.AccountTypeRevenue,
			7: model.AccountTypeExpense,
			8: model.AccountTypeExpense,
			9: model.AccountTypeExpense,
		},
		ItemRanges: []ItemRange{
			{1000, 1199, lineitem.Cash},
			{1200, 1399, lineitem.TradeReceivables},
			{1400, 1499, lineitem.Inventories},
			{1500, 1599, lineitem.Prepayments},
			{1600, 1999, lineitem.OtherReceivables},
			{2000, 2499, lineitem.PropertyPlantEquipment},
			{2500, 2699, lineitem.IntangibleAssets},
			{2700, 2899, lineitem.Investments},
			{2900, 2999, lineitem.DeferredTaxAsset},
			{3000, 3299, lineitem.TradePayables},
			{3300, 3499, lineitem.ShortTermBorrowings},
			{3500, 3599, lineitem.CurrentTaxPayable},
			{3600, 3699, lineitem.Provisions},
			{3700, 3999, lineitem.OtherPayables},
			{4000, 4499, lineitem.LongTermBorrowings},
			{4500, 4799, lineitem.LeaseLiabilities},
			{4800, 4999, lineitem.DeferredTaxLiability},
			{5000, 5499, lineitem.ShareCapital},
			{5500, 5799, lineitem.RetainedEarnings},
			{5800, 5999, lineitem.OtherReserves},
			{6000, 6499, lineitem.Revenue},
			{6500, 6799, lineitem.OtherIncome},
			{6800, 6999, lineitem.FinanceIncome},
			{7000, 7499, lineitem.CostOfSales},
			{7500, 7699, lineitem.DistributionCosts},
			{7700, 8299, lineitem.AdministrativeExpenses},
			{8300, 8499, lineitem.OtherExpenses},
			{8500, 8799, lineitem.FinanceCosts},
			{8800, 8999, lineitem.TaxExpense},
		},
		Keywords: []KeywordRule{
			{AnyOf: []string{"cash", "bank"}, Item: lineitem.Cash},
			{AnyOf: []string{"receivable", "debtor"}, Item: lineitem.TradeReceivables},
			{AnyOf: []string{"inventory", "stock"}, Item: lineitem.Inventories},
			{AnyOf: []string{"payable", "creditor"}, Item: lineitem.TradePayables},
			{AnyOf: []string{"revenue", "sale", "income"}, Item: lineitem.Revenue},
			{AllOf: []string{"cost", "sale"}, Item: lineitem.CostOfSales},
			{AnyOf: []string{"prepaid", "prepayment"}, Item: lineitem.Prepayments},
			{AllOf: []string{"share capital"}, Item: lineitem.ShareCapital},
			{AllOf: []string{"retained"}, Item: lineitem.RetainedEarnings},
			{AnyOf: []string{"salary", "salaries", "wage", "depreciation"}, Item: lineitem.AdministrativeExpenses},
			{AllOf: []string{"interest"}, AnyOf: []string{"paid", "expense", "charge"}, Item: lineitem.FinanceCosts},
			{AllOf: []string{"interest"}, AnyOf: []string{"received", "earned"}, Item: lineitem.FinanceIncome},
		},
	}
}
