// Package statements turns a classified trial balance into the statement of
// financial position and the statement of comprehensive income.
//
// Builders are pure: they read the entries they are given, never modify them,
// and return fresh values. A Builder is safe for concurrent use.
package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

// Resolver supplies the effective account type and line item of an entry.
type Resolver interface {
	Resolve(entry model.LedgerEntry, overrides map[string]string) (model.AccountType, string)
}

// Builder produces statements from ledger entries.
type Builder struct {
	resolver  Resolver
	catalogue *lineitem.Catalogue
	tolerance decimal.Decimal
}

// NewBuilder creates a Builder. The catalogue is shared, not copied.
func NewBuilder(resolver Resolver, catalogue *lineitem.Catalogue) *Builder {
	return &Builder{
		resolver:  resolver,
		catalogue: catalogue,
		tolerance: trialbalance.DefaultTolerance(),
	}
}

// WithTolerance returns a copy of b that uses tolerance for the balance and
// identity checks of Build.
func (b *Builder) WithTolerance(tolerance decimal.Decimal) *Builder {
	c := *b
	c.tolerance = tolerance
	return &c
}

// Tolerance returns the rounding tolerance used by Build.
func (b *Builder) Tolerance() decimal.Decimal {
	return b.tolerance
}

func (b *Builder) newSection(s lineitem.Section) model.Section {
	keys := b.catalogue.Keys(s)
	lines := make(map[string]decimal.Decimal, len(keys))
	for _, k := range keys {
		lines[k] = decimal.Zero
	}
	return model.Section{Lines: lines, Total: decimal.Zero}
}

func (b *Builder) total(section *model.Section, s lineitem.Section) {
	total := decimal.Zero
	for _, k := range b.catalogue.Keys(s) {
		total = total.Add(section.Lines[k])
	}
	section.Total = total
}
