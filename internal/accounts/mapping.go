package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Mapping is a user-curated account number -> line item table. It is only
// consulted for entries that carry no mapped line item of their own.
type Mapping map[string]string

// LineItemChecker reports whether a line item key exists.
type LineItemChecker interface {
	Contains(key string) bool
}

// MappingError describes a mapping row whose line item is not catalogued.
type MappingError struct {
	AccountNumber string
	LineItem      string
}

func (e MappingError) Error() string {
	return fmt.Sprintf("account %s: unknown line item %q", e.AccountNumber, e.LineItem)
}

// Validate reports every row whose line item is outside the catalogue, sorted
// by account number.
func (m Mapping) Validate(catalogue LineItemChecker) []MappingError {
	var errs []MappingError
	for _, number := range m.numbers() {
		if item := m[number]; !catalogue.Contains(item) {
			errs = append(errs, MappingError{AccountNumber: number, LineItem: item})
		}
	}
	return errs
}

// Merge returns a new Mapping with other's rows laid over m's.
func (m Mapping) Merge(other Mapping) Mapping {
	out := make(Mapping, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func (m Mapping) numbers() []string {
	numbers := make([]string, 0, len(m))
	for k := range m {
		numbers = append(numbers, k)
	}
	sort.Strings(numbers)
	return numbers
}

const mappingFields = 2

// ReadMapping reads account-mapping.csv (account_number,line_item).
func ReadMapping(r io.Reader) (Mapping, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = mappingFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mapping CSV: %w", err)
	}

	m := make(Mapping)
	if len(records) == 0 {
		return m, nil
	}
	for i, rec := range records[1:] {
		number := strings.TrimSpace(rec[0])
		item := strings.TrimSpace(rec[1])
		if number == "" {
			return nil, fmt.Errorf("row %d: empty account_number", i+2)
		}
		if item == "" {
			continue
		}
		m[number] = item
	}
	return m, nil
}

// WriteMapping writes account-mapping.csv sorted by account number.
func WriteMapping(w io.Writer, m Mapping) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_number", "line_item"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, number := range m.numbers() {
		if err := cw.Write([]string{number, m[number]}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MappingPath is the mapping file location inside a project.
func MappingPath(repoRoot string) string {
	return filepath.Join(repoRoot, "accounts", "account-mapping.csv")
}

// LoadMapping reads the project's mapping file. A missing file is an empty
// mapping.
func LoadMapping(repoRoot string) (Mapping, error) {
	f, err := os.Open(MappingPath(repoRoot))
	if errors.Is(err, fs.ErrNotExist) {
		return Mapping{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening account mapping: %w", err)
	}
	defer f.Close()

	m, err := ReadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("reading account mapping: %w", err)
	}
	return m, nil
}

// SaveMapping writes the project's mapping file.
func SaveMapping(repoRoot string, m Mapping) error {
	path := MappingPath(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating account mapping file: %w", err)
	}
	defer f.Close()

	if err := WriteMapping(f, m); err != nil {
		return fmt.Errorf("writing account mapping: %w", err)
	}
	return nil
}
