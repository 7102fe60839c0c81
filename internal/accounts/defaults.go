package accounts

import (
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

// DefaultChart returns the default chart of accounts for an entity type.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "sole_proprietor":
		return soleProprietorChart()
	case "pty_ltd":
		return privateCompanyChart()
	default:
		return privateCompanyChart()
	}
}

func privateCompanyChart() []model.Account {
	return []model.Account{
		{Number: "1000", Name: "Bank - Current Account", Type: model.AccountTypeAsset, LineItem: lineitem.Cash, Description: "Primary business bank account"},
		{Number: "1050", Name: "Petty Cash", Type: model.AccountTypeAsset, LineItem: lineitem.Cash},
		{Number: "1200", Name: "Trade Debtors", Type: model.AccountTypeAsset, LineItem: lineitem.TradeReceivables},
		{Number: "1400", Name: "Inventory", Type: model.AccountTypeAsset, LineItem: lineitem.Inventories},
		{Number: "1500", Name: "Prepaid Expenses", Type: model.AccountTypeAsset, LineItem: lineitem.Prepayments},
		{Number: "2000", Name: "Equipment", Type: model.AccountTypeAsset, LineItem: lineitem.PropertyPlantEquipment},
		{Number: "2010", Name: "Accumulated Depreciation - Equipment", Type: model.AccountTypeAsset, LineItem: lineitem.PropertyPlantEquipment, ParentNumber: "2000"},
		{Number: "3000", Name: "Trade Creditors", Type: model.AccountTypeLiability, LineItem: lineitem.TradePayables},
		{Number: "3500", Name: "SARS - Income Tax", Type: model.AccountTypeLiability, LineItem: lineitem.CurrentTaxPayable},
		{Number: "3700", Name: "VAT Control", Type: model.AccountTypeLiability, LineItem: lineitem.OtherPayables},
		{Number: "4000", Name: "Long-term Loan", Type: model.AccountTypeLiability, LineItem: lineitem.LongTermBorrowings},
		{Number: "5000", Name: "Share Capital", Type: model.AccountTypeEquity, LineItem: lineitem.ShareCapital},
		{Number: "5500", Name: "Retained Earnings", Type: model.AccountTypeEquity, LineItem: lineitem.RetainedEarnings},
		{Number: "6000", Name: "Sales", Type: model.AccountTypeRevenue, LineItem: lineitem.Revenue},
		{Number: "6500", Name: "Sundry Income", Type: model.AccountTypeRevenue, LineItem: lineitem.OtherIncome},
		{Number: "6800", Name: "Interest Received", Type: model.AccountTypeRevenue, LineItem: lineitem.FinanceIncome},
		{Number: "7000", Name: "Cost of Sales", Type: model.AccountTypeExpense, LineItem: lineitem.CostOfSales},
		{Number: "7500", Name: "Delivery Costs", Type: model.AccountTypeExpense, LineItem: lineitem.DistributionCosts},
		{Number: "7700", Name: "Salaries and Wages", Type: model.AccountTypeExpense, LineItem: lineitem.AdministrativeExpenses},
		{Number: "7800", Name: "Rent", Type: model.AccountTypeExpense, LineItem: lineitem.AdministrativeExpenses},
		{Number: "7900", Name: "Depreciation", Type: model.AccountTypeExpense, LineItem: lineitem.AdministrativeExpenses},
		{Number: "8500", Name: "Interest Paid", Type: model.AccountTypeExpense, LineItem: lineitem.FinanceCosts},
		{Number: "8800", Name: "Income Tax Expense", Type: model.AccountTypeExpense, LineItem: lineitem.TaxExpense},
	}
}

func soleProprietorChart() []model.Account {
	return []model.Account{
		{Number: "1000", Name: "Business Bank Account", Type: model.AccountTypeAsset, LineItem: lineitem.Cash},
		{Number: "1200", Name: "Debtors", Type: model.AccountTypeAsset, LineItem: lineitem.TradeReceivables},
		{Number: "2000", Name: "Equipment", Type: model.AccountTypeAsset, LineItem: lineitem.PropertyPlantEquipment},
		{Number: "3000", Name: "Creditors", Type: model.AccountTypeLiability, LineItem: lineitem.TradePayables},
		{Number: "5000", Name: "Owner's Capital", Type: model.AccountTypeEquity, LineItem: lineitem.ShareCapital},
		{Number: "5500", Name: "Accumulated Profits", Type: model.AccountTypeEquity, LineItem: lineitem.RetainedEarnings},
		{Number: "6000", Name: "Fees Earned", Type: model.AccountTypeRevenue, LineItem: lineitem.Revenue},
		{Number: "7700", Name: "General Expenses", Type: model.AccountTypeExpense, LineItem: lineitem.AdministrativeExpenses},
		{Number: "8500", Name: "Bank Charges and Interest", Type: model.AccountTypeExpense, LineItem: lineitem.FinanceCosts},
	}
}
