package model

import "github.com/shopspring/decimal"

// LedgerEntry is one account line of a trial balance.
//
// Debit and Credit feed the trial balance validator. Balance is the signed
// figure the statement builders aggregate. AccountType and MappedLineItem are
// optional manual overrides; when empty the classifier and the account mapping
// supply them.
type LedgerEntry struct {
	AccountNumber  string          `json:"account_number" yaml:"account_number"`
	AccountName    string          `json:"account_name" yaml:"account_name"`
	Balance        decimal.Decimal `json:"balance" yaml:"balance"`
	Debit          decimal.Decimal `json:"debit_amount" yaml:"debit_amount"`
	Credit         decimal.Decimal `json:"credit_amount" yaml:"credit_amount"`
	AccountType    AccountType     `json:"account_type,omitempty" yaml:"account_type,omitempty"`
	MappedLineItem string          `json:"mapped_line_item,omitempty" yaml:"mapped_line_item,omitempty"`
}
