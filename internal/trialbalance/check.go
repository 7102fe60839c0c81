package trialbalance

import (
	"fmt"

	"github.com/cleared-dev/statements/internal/model"
)

// IssueKind names a row-level problem found by Check.
type IssueKind string

const (
	IssueDebitAndCredit  IssueKind = "debit_and_credit"
	IssueUnknownType     IssueKind = "unknown_account_type"
	IssueUnmapped        IssueKind = "unmapped"
	IssueUnknownLineItem IssueKind = "unknown_line_item"
)

// Issue is a problem with a single trial balance row. Row is 1-based.
type Issue struct {
	Row           int       `json:"row" yaml:"row"`
	AccountNumber string    `json:"account_number" yaml:"account_number"`
	Kind          IssueKind `json:"kind" yaml:"kind"`
	Detail        string    `json:"detail" yaml:"detail"`
}

func (i Issue) Error() string {
	return fmt.Sprintf("row %d [%s]: %s", i.Row, i.AccountNumber, i.Detail)
}

// Resolver supplies the effective type and line item of an entry.
type Resolver interface {
	Resolve(entry model.LedgerEntry, overrides map[string]string) (model.AccountType, string)
}

// LineItemChecker reports whether a line item key is catalogued.
type LineItemChecker interface {
	Contains(key string) bool
}

// Check reports rows that will not land on a statement as the caller
// probably expects. It is advisory: the builders accept every row regardless.
func Check(entries []model.LedgerEntry, resolver Resolver, catalogue LineItemChecker, overrides map[string]string) []Issue {
	var issues []Issue
	for i, e := range entries {
		row := i + 1

		if !e.Debit.IsZero() && !e.Credit.IsZero() {
			issues = append(issues, Issue{
				Row:           row,
				AccountNumber: e.AccountNumber,
				Kind:          IssueDebitAndCredit,
				Detail:        fmt.Sprintf("both debit (%s) and credit (%s) are set", e.Debit.StringFixed(2), e.Credit.StringFixed(2)),
			})
		}

		typ, item := resolver.Resolve(e, overrides)
		if !typ.Known() {
			issues = append(issues, Issue{
				Row:           row,
				AccountNumber: e.AccountNumber,
				Kind:          IssueUnknownType,
				Detail:        "account type cannot be determined",
			})
		}

		switch {
		case item == "":
			issues = append(issues, Issue{
				Row:           row,
				AccountNumber: e.AccountNumber,
				Kind:          IssueUnmapped,
				Detail:        "no line item mapped",
			})
		case !catalogue.Contains(item):
			issues = append(issues, Issue{
				Row:           row,
				AccountNumber: e.AccountNumber,
				Kind:          IssueUnknownLineItem,
				Detail:        fmt.Sprintf("line item %q is not in the catalogue", item),
			})
		}
	}
	return issues
}
