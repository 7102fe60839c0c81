package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
	"github.com/cleared-dev/statements/internal/ratios"
	"github.com/cleared-dev/statements/internal/statements"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

// EntryRequest is one ledger entry as posted by clients. Amounts may be JSON
// numbers or strings; anything unparseable counts as zero.
type EntryRequest struct {
	AccountNumber  string       `json:"account_number" validate:"required,max=32"`
	AccountName    string       `json:"account_name" validate:"max=200"`
	Balance        model.Amount `json:"balance"`
	Debit          model.Amount `json:"debit_amount"`
	Credit         model.Amount `json:"credit_amount"`
	AccountType    string       `json:"account_type" validate:"max=20"`
	MappedLineItem string       `json:"mapped_line_item" validate:"max=64"`
}

// Entry converts the request to a LedgerEntry.
func (e EntryRequest) Entry() model.LedgerEntry {
	return model.LedgerEntry{
		AccountNumber:  e.AccountNumber,
		AccountName:    e.AccountName,
		Balance:        e.Balance.Decimal,
		Debit:          e.Debit.Decimal,
		Credit:         e.Credit.Decimal,
		AccountType:    model.ParseAccountType(e.AccountType),
		MappedLineItem: e.MappedLineItem,
	}
}

// EntriesRequest is the body of the validate and statements endpoints.
// Overrides map account numbers to line items for entries without one.
type EntriesRequest struct {
	Entries   []EntryRequest    `json:"entries" validate:"max=100000,dive"`
	Overrides map[string]string `json:"overrides" validate:"max=100000"`
}

// LedgerEntries converts the posted entries. A missing entries field stays
// nil so the validator can tell it apart from an empty list.
func (r EntriesRequest) LedgerEntries() []model.LedgerEntry {
	if r.Entries == nil {
		return nil
	}
	out := make([]model.LedgerEntry, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Entry()
	}
	return out
}

// RatiosRequest carries two completed statements. Figures decode like entry
// amounts: malformed numbers count as zero.
type RatiosRequest struct {
	FinancialPosition   PositionRequest `json:"financial_position"`
	ComprehensiveIncome IncomeRequest   `json:"comprehensive_income"`
}

// SectionRequest is one statement section as posted by clients.
type SectionRequest struct {
	Lines map[string]model.Amount `json:"lines"`
	Total model.Amount            `json:"total"`
}

func (s SectionRequest) section() model.Section {
	sec := model.Section{Lines: make(map[string]decimal.Decimal, len(s.Lines)), Total: s.Total.Decimal}
	for k, v := range s.Lines {
		sec.Lines[k] = v.Decimal
	}
	return sec
}

// PositionRequest mirrors model.FinancialPosition.
type PositionRequest struct {
	CurrentAssets             SectionRequest `json:"currentAssets"`
	NonCurrentAssets          SectionRequest `json:"nonCurrentAssets"`
	Equity                    SectionRequest `json:"equity"`
	CurrentLiabilities        SectionRequest `json:"currentLiabilities"`
	NonCurrentLiabilities     SectionRequest `json:"nonCurrentLiabilities"`
	TotalAssets               model.Amount   `json:"totalAssets"`
	TotalEquityAndLiabilities model.Amount   `json:"totalEquityAndLiabilities"`
}

// Position converts the request to a FinancialPosition.
func (p PositionRequest) Position() model.FinancialPosition {
	return model.FinancialPosition{
		CurrentAssets:             p.CurrentAssets.section(),
		NonCurrentAssets:          p.NonCurrentAssets.section(),
		Equity:                    p.Equity.section(),
		CurrentLiabilities:        p.CurrentLiabilities.section(),
		NonCurrentLiabilities:     p.NonCurrentLiabilities.section(),
		TotalAssets:               p.TotalAssets.Decimal,
		TotalEquityAndLiabilities: p.TotalEquityAndLiabilities.Decimal,
	}
}

// IncomeRequest mirrors model.ComprehensiveIncome.
type IncomeRequest struct {
	Revenue                model.Amount `json:"revenue"`
	CostOfSales            model.Amount `json:"cost_of_sales"`
	GrossProfit            model.Amount `json:"gross_profit"`
	OtherIncome            model.Amount `json:"other_income"`
	DistributionCosts      model.Amount `json:"distribution_costs"`
	AdministrativeExpenses model.Amount `json:"administrative_expenses"`
	OtherExpenses          model.Amount `json:"other_expenses"`
	OperatingProfit        model.Amount `json:"operating_profit"`
	FinanceIncome          model.Amount `json:"finance_income"`
	FinanceCosts           model.Amount `json:"finance_costs"`
	ProfitBeforeTax        model.Amount `json:"profit_before_tax"`
	TaxExpense             model.Amount `json:"tax_expense"`
	ProfitForYear          model.Amount `json:"profit_for_year"`
}

// Income converts the request to a ComprehensiveIncome. Subtotals are taken
// as posted.
func (i IncomeRequest) Income() model.ComprehensiveIncome {
	return model.ComprehensiveIncome{
		Revenue:                i.Revenue.Decimal,
		CostOfSales:            i.CostOfSales.Decimal,
		GrossProfit:            i.GrossProfit.Decimal,
		OtherIncome:            i.OtherIncome.Decimal,
		DistributionCosts:      i.DistributionCosts.Decimal,
		AdministrativeExpenses: i.AdministrativeExpenses.Decimal,
		OtherExpenses:          i.OtherExpenses.Decimal,
		OperatingProfit:        i.OperatingProfit.Decimal,
		FinanceIncome:          i.FinanceIncome.Decimal,
		FinanceCosts:           i.FinanceCosts.Decimal,
		ProfitBeforeTax:        i.ProfitBeforeTax.Decimal,
		TaxExpense:             i.TaxExpense.Decimal,
		ProfitForYear:          i.ProfitForYear.Decimal,
	}
}

// TaxRequest asks for levies on the given amounts. Omitted amounts are not
// computed.
type TaxRequest struct {
	Profit       *model.Amount `json:"profit"`
	VATExclusive *model.Amount `json:"vat_exclusive"`
	VATInclusive *model.Amount `json:"vat_inclusive"`
	Payroll      *model.Amount `json:"annual_payroll"`
	Salary       *model.Amount `json:"monthly_remuneration"`
}

// ValidateResponse is returned by POST /v1/validate.
type ValidateResponse struct {
	trialbalance.Result
	Issues []trialbalance.Issue `json:"issues"`
}

// StatementsResponse is returned by POST /v1/statements.
type StatementsResponse struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	statements.Report
}

// RatiosResponse is returned by POST /v1/ratios.
type RatiosResponse struct {
	Ratios ratios.Ratios `json:"ratios"`
}

// ClassifyResponse is returned by GET /v1/classify/{number}.
type ClassifyResponse struct {
	AccountNumber string            `json:"account_number"`
	AccountType   model.AccountType `json:"account_type"`
	Suggestions   []string          `json:"suggestions"`
}

// TaxResponse is returned by POST /v1/tax. Formatted holds display strings
// for the same figures.
type TaxResponse struct {
	CorporateTax *model.Amount     `json:"corporate_tax,omitempty"`
	VAT          *model.Amount     `json:"vat,omitempty"`
	VATIncluded  *model.Amount     `json:"vat_included,omitempty"`
	SDL          *model.Amount     `json:"sdl,omitempty"`
	UIFEmployee  *model.Amount     `json:"uif_employee,omitempty"`
	UIFEmployer  *model.Amount     `json:"uif_employer,omitempty"`
	Formatted    map[string]string `json:"formatted"`
}
