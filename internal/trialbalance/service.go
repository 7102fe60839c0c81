package trialbalance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

// Dir is the project subdirectory holding trial balance files.
const Dir = "trial-balance"

// Service reads and writes the trial balances of a project, one CSV per
// period label (for example FY2026.csv).
type Service struct {
	repoRoot string
}

// NewService creates a trial balance Service.
func NewService(repoRoot string) *Service {
	return &Service{repoRoot: repoRoot}
}

// Path returns the file for a period label.
func (s *Service) Path(label string) (string, error) {
	if label == "" || strings.ContainsAny(label, `/\`) || label == "." || label == ".." {
		return "", fmt.Errorf("invalid period label %q", label)
	}
	return filepath.Join(s.repoRoot, Dir, label+".csv"), nil
}

// Load reads the trial balance for a period label.
func (s *Service) Load(label string) ([]model.LedgerEntry, error) {
	path, err := s.Path(label)
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// Save writes the trial balance for a period label, replacing any existing file.
func (s *Service) Save(label string, entries []model.LedgerEntry) error {
	path, err := s.Path(label)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating trial balance dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trial balance %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteEntries(f, entries); err != nil {
		return fmt.Errorf("writing trial balance %s: %w", path, err)
	}
	return nil
}

// Periods lists the period labels that have a trial balance, sorted.
func (s *Service) Periods() ([]string, error) {
	dirEntries, err := os.ReadDir(filepath.Join(s.repoRoot, Dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading trial balance dir: %w", err)
	}

	var labels []string
	for _, e := range dirEntries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".csv") {
			continue
		}
		labels = append(labels, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	sort.Strings(labels)
	return labels, nil
}

// ReadFile reads a trial balance CSV from an arbitrary path.
func ReadFile(path string) ([]model.LedgerEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trial balance %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading trial balance %s: %w", path, err)
	}
	return entries, nil
}
