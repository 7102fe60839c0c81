package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

const (
	numFields   = 6
	colNumber   = 0
	colName     = 1
	colType     = 2
	colLineItem = 3
	colParent   = 4
	colDesc     = 5
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_number", "account_name", "account_type", "line_item", "parent_number", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = acct.Number
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colLineItem] = acct.LineItem
	row[colParent] = acct.ParentNumber
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	number := strings.TrimSpace(record[colNumber])
	if number == "" {
		return model.Account{}, fmt.Errorf("empty account_number")
	}

	acctType := model.ParseAccountType(record[colType])
	if acctType == model.AccountTypeUnknown {
		return model.Account{}, fmt.Errorf("account %s: unknown account_type %q", number, record[colType])
	}

	return model.Account{
		Number:       number,
		Name:         record[colName],
		Type:         acctType,
		LineItem:     strings.TrimSpace(record[colLineItem]),
		ParentNumber: strings.TrimSpace(record[colParent]),
		Description:  record[colDesc],
	}, nil
}
