package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byNumber map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byNumber := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Service{accounts: accounts, byNumber: byNumber}
}

// ChartPath is the chart of accounts location inside a project.
func ChartPath(repoRoot string) string {
	return filepath.Join(repoRoot, "accounts", "chart-of-accounts.csv")
}

// Load reads chart-of-accounts.csv from a repo root and returns a Service.
func Load(repoRoot string) (*Service, error) {
	f, err := os.Open(ChartPath(repoRoot))
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// Get returns an account by number.
func (s *Service) Get(number string) (model.Account, bool) {
	a, ok := s.byNumber[strings.TrimSpace(number)]
	return a, ok
}

// Mapping returns the chart's default line items as an account mapping.
// Accounts without a line item are left out.
func (s *Service) Mapping() Mapping {
	m := make(Mapping, len(s.accounts))
	for _, a := range s.accounts {
		if a.LineItem != "" {
			m[a.Number] = a.LineItem
		}
	}
	return m
}

// Annotate returns a copy of entries where entries without an account type
// take the type recorded in the chart. The input slice is left untouched.
func (s *Service) Annotate(entries []model.LedgerEntry) []model.LedgerEntry {
	out := make([]model.LedgerEntry, len(entries))
	for i, e := range entries {
		if e.AccountType == "" {
			if a, ok := s.Get(e.AccountNumber); ok {
				e.AccountType = a.Type
			}
		}
		out[i] = e
	}
	return out
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(repoRoot string) error {
	path := ChartPath(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
