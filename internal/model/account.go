package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
	// AccountTypeUnknown marks an account that could not be classified.
	// Entries of this type never reach a statement.
	AccountTypeUnknown AccountType = "UNKNOWN"
)

// AccountTypes lists the five classifiable types in statement order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeAsset,
		AccountTypeLiability,
		AccountTypeEquity,
		AccountTypeRevenue,
		AccountTypeExpense,
	}
}

// ParseAccountType normalises s to an AccountType. Blank input returns the
// empty type (unset); anything unrecognised returns AccountTypeUnknown.
func ParseAccountType(s string) AccountType {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	for _, t := range AccountTypes() {
		if string(t) == s {
			return t
		}
	}
	return AccountTypeUnknown
}

// Known reports whether t is one of the five classifiable types.
func (t AccountType) Known() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Number       string
	Name         string
	Type         AccountType
	LineItem     string // default statement line, may be empty
	ParentNumber string // "" = top-level
	Description  string
}
