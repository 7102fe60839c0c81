package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

// SageParser parses Sage trial balance CSV exports. Columns are located by
// header name, so extra columns and reordering are tolerated.
type SageParser struct{}

var sageColumns = map[string][]string{
	"account": {"account", "account code", "nominal code", "code", "a/c"},
	"name":    {"name", "account name", "description"},
	"debit":   {"debit", "debits", "dr"},
	"credit":  {"credit", "credits", "cr"},
}

// Format returns the parser name.
func (p *SageParser) Format() string { return "sage" }

// Parse reads a Sage export and returns LedgerEntries. Total rows and rows
// without an account code are skipped. Amounts that do not parse count as
// zero.
func (p *SageParser) Parse(r io.Reader) ([]model.LedgerEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sage CSV: %w", err)
	}

	if len(records) <= 1 {
		return []model.LedgerEntry{}, nil
	}

	cols, err := locateColumns(records[0])
	if err != nil {
		return nil, err
	}

	entries := make([]model.LedgerEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		entry, ok := parseSageRow(rec, cols)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func locateColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(sageColumns))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for key, aliases := range sageColumns {
			if _, seen := cols[key]; seen {
				continue
			}
			for _, a := range aliases {
				if h == a {
					cols[key] = i
				}
			}
		}
	}
	for _, required := range []string{"account", "debit", "credit"} {
		if _, ok := cols[required]; !ok {
			return nil, errors.New("sage CSV: missing " + required + " column")
		}
	}
	return cols, nil
}

func parseSageRow(rec []string, cols map[string]int) (model.LedgerEntry, bool) {
	field := func(key string) string {
		i, ok := cols[key]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	code := field("account")
	if code == "" || strings.HasPrefix(strings.ToLower(code), "total") {
		return model.LedgerEntry{}, false
	}
	// Sub-account codes like "1000/000" report against the main account.
	if i := strings.IndexByte(code, '/'); i > 0 {
		code = code[:i]
	}

	debit := model.ParseAmount(field("debit"))
	credit := model.ParseAmount(field("credit"))
	return model.LedgerEntry{
		AccountNumber: code,
		AccountName:   field("name"),
		Debit:         debit,
		Credit:        credit,
		Balance:       debit.Sub(credit),
	}, true
}
