package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/config"
	"github.com/cleared-dev/statements/internal/format"
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
	"github.com/cleared-dev/statements/internal/rates"
	"github.com/cleared-dev/statements/internal/statements"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

// project is everything loaded from a repository root. Outside a project
// directory the defaults are used, so a bare CSV can still be processed.
type project struct {
	root       string
	cfg        *config.Config
	chart      *accounts.Service
	overrides  accounts.Mapping
	classifier *accounts.Classifier
	catalogue  *lineitem.Catalogue
	builder    *statements.Builder
	formatter  *format.Formatter
	levies     rates.Rates

	mappingErrors []accounts.MappingError
}

func loadProject(root string) (*project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(config.Path(absRoot))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default("", "")
	case err != nil:
		return nil, err
	default:
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	chart, err := accounts.Load(absRoot)
	if errors.Is(err, fs.ErrNotExist) {
		chart, err = accounts.NewService(nil), nil
	}
	if err != nil {
		return nil, err
	}

	mapping, err := accounts.LoadMapping(absRoot)
	if err != nil {
		return nil, err
	}

	tolerance, err := cfg.Tolerance()
	if err != nil {
		return nil, err
	}
	levies, err := cfg.LevyRates()
	if err != nil {
		return nil, err
	}

	catalogue := lineitem.Default()
	classifier := accounts.NewClassifier(accounts.DefaultRules())
	overrides := chart.Mapping().Merge(mapping)

	return &project{
		root:          absRoot,
		cfg:           cfg,
		chart:         chart,
		overrides:     overrides,
		classifier:    classifier,
		catalogue:     catalogue,
		builder:       statements.NewBuilder(classifier, catalogue).WithTolerance(tolerance),
		formatter:     format.New(cfg.Reporting.Locale, cfg.Reporting.Currency),
		levies:        levies,
		mappingErrors: overrides.Validate(catalogue),
	}, nil
}

// entries loads a trial balance given either a file path or a period label
// saved under trial-balance/, and fills missing account types from the chart.
func (p *project) entries(source string) ([]model.LedgerEntry, string, error) {
	path := source
	if _, err := os.Stat(path); err != nil {
		tb := trialbalance.NewService(p.root)
		labelPath, perr := tb.Path(source)
		if perr != nil {
			return nil, "", fmt.Errorf("trial balance %q: %w", source, err)
		}
		if _, err := os.Stat(labelPath); err != nil {
			periods, _ := tb.Periods()
			if len(periods) == 0 {
				return nil, "", fmt.Errorf("trial balance %q: no such file or period", source)
			}
			return nil, "", fmt.Errorf("trial balance %q: no such file or period (available: %s)", source, strings.Join(periods, ", "))
		}
		path = labelPath
	}

	entries, err := trialbalance.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return p.chart.Annotate(entries), path, nil
}

func (p *project) issues(entries []model.LedgerEntry) []trialbalance.Issue {
	return trialbalance.Check(entries, p.classifier, p.catalogue, p.overrides)
}
