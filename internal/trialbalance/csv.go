package trialbalance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

// Header is the CSV header for a trial balance file.
const Header = "account_number,account_name,debit,credit,balance,account_type,line_item"

const (
	numFields   = 7
	colNumber   = 0
	colName     = 1
	colDebit    = 2
	colCredit   = 3
	colBalance  = 4
	colType     = 5
	colLineItem = 6
)

// ReadEntries reads all entries from a trial balance CSV reader.
func ReadEntries(r io.Reader) ([]model.LedgerEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trial balance CSV: %w", err)
	}

	// An empty file is a trial balance with no rows, like a header-only one.
	if len(records) == 0 {
		return []model.LedgerEntry{}, nil
	}

	// Skip header row.
	entries := make([]model.LedgerEntry, 0, len(records)-1)
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes entries to a trial balance CSV writer (including header).
func WriteEntries(w io.Writer, entries []model.LedgerEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing trial balance CSV: %w", err)
	}
	return nil
}

// MarshalEntry converts an entry to a CSV row.
func MarshalEntry(entry model.LedgerEntry) []string {
	row := make([]string, numFields)
	row[colNumber] = entry.AccountNumber
	row[colName] = entry.AccountName

	if !entry.Debit.IsZero() {
		row[colDebit] = entry.Debit.StringFixed(2)
	}
	if !entry.Credit.IsZero() {
		row[colCredit] = entry.Credit.StringFixed(2)
	}
	row[colBalance] = entry.Balance.StringFixed(2)

	row[colType] = string(entry.AccountType)
	row[colLineItem] = entry.MappedLineItem
	return row
}

// UnmarshalEntry converts a CSV row to an entry. Amount columns never fail:
// malformed figures read as zero. A blank balance is debit minus credit.
func UnmarshalEntry(record []string) (model.LedgerEntry, error) {
	if len(record) != numFields {
		return model.LedgerEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	number := strings.TrimSpace(record[colNumber])
	if number == "" {
		return model.LedgerEntry{}, fmt.Errorf("empty account_number")
	}

	debit := model.ParseAmount(record[colDebit])
	credit := model.ParseAmount(record[colCredit])

	balance := debit.Sub(credit)
	if strings.TrimSpace(record[colBalance]) != "" {
		balance = model.ParseAmount(record[colBalance])
	}

	return model.LedgerEntry{
		AccountNumber:  number,
		AccountName:    strings.TrimSpace(record[colName]),
		Debit:          debit,
		Credit:         credit,
		Balance:        balance,
		AccountType:    model.ParseAccountType(record[colType]),
		MappedLineItem: strings.TrimSpace(record[colLineItem]),
	}, nil
}
