package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

// Statement names a financial statement.
type Statement string

const (
	StatementFinancialPosition   Statement = "financial_position"
	StatementComprehensiveIncome Statement = "comprehensive_income"
)

// Reason explains why an entry was left out of a statement.
type Reason string

const (
	ReasonNoLineItem       Reason = "no_line_item"
	ReasonUnknownType      Reason = "unknown_account_type"
	ReasonNotInSection     Reason = "not_in_section"
	ReasonNotIncomeAccount Reason = "not_income_account"
)

// Exclusion records an entry a builder skipped. Index is the entry's position
// in the input slice.
type Exclusion struct {
	Index         int               `json:"index" yaml:"index"`
	AccountNumber string            `json:"account_number" yaml:"account_number"`
	AccountName   string            `json:"account_name" yaml:"account_name"`
	AccountType   model.AccountType `json:"account_type" yaml:"account_type"`
	LineItem      string            `json:"line_item,omitempty" yaml:"line_item,omitempty"`
	Balance       decimal.Decimal   `json:"balance" yaml:"balance"`
	Statement     Statement         `json:"statement" yaml:"statement"`
	Reason        Reason            `json:"reason" yaml:"reason"`
}

func exclude(i int, e model.LedgerEntry, typ model.AccountType, item string, st Statement, reason Reason) Exclusion {
	return Exclusion{
		Index:         i,
		AccountNumber: e.AccountNumber,
		AccountName:   e.AccountName,
		AccountType:   typ,
		LineItem:      item,
		Balance:       e.Balance,
		Statement:     st,
		Reason:        reason,
	}
}
