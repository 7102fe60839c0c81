package statements

import (
	"github.com/cleared-dev/statements/internal/model"
	"github.com/cleared-dev/statements/internal/ratios"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

// Report bundles everything produced from one trial balance.
type Report struct {
	Validation          trialbalance.Result       `json:"validation" yaml:"validation"`
	FinancialPosition   model.FinancialPosition   `json:"financial_position" yaml:"financial_position"`
	ComprehensiveIncome model.ComprehensiveIncome `json:"comprehensive_income" yaml:"comprehensive_income"`
	Ratios              ratios.Ratios             `json:"ratios" yaml:"ratios"`
	Identity            Identity                  `json:"identity" yaml:"identity"`
	// Unclassified lists entries that reached neither statement.
	Unclassified []Exclusion `json:"unclassified" yaml:"unclassified"`
	Exclusions   []Exclusion `json:"exclusions" yaml:"exclusions"`
}

// Build validates the entries, runs both builders and the ratio engine. An
// unbalanced trial balance does not stop the build; callers decide what to do
// with Validation.IsBalanced.
func (b *Builder) Build(entries []model.LedgerEntry, overrides map[string]string) Report {
	pos, posExcluded := b.FinancialPosition(entries, overrides)
	ci, ciExcluded := b.ComprehensiveIncome(entries, overrides)

	inIncome := make(map[int]bool, len(entries))
	for i := range entries {
		inIncome[i] = true
	}
	for _, x := range ciExcluded {
		inIncome[x.Index] = false
	}

	unclassified := []Exclusion{}
	for _, x := range posExcluded {
		if !inIncome[x.Index] {
			unclassified = append(unclassified, x)
		}
	}

	exclusions := make([]Exclusion, 0, len(posExcluded)+len(ciExcluded))
	exclusions = append(exclusions, posExcluded...)
	exclusions = append(exclusions, ciExcluded...)

	return Report{
		Validation:          trialbalance.ValidateWithTolerance(entries, b.tolerance),
		FinancialPosition:   pos,
		ComprehensiveIncome: ci,
		Ratios:              ratios.Compute(pos, ci),
		Identity:            identity(pos, ci, b.tolerance),
		Unclassified:        unclassified,
		Exclusions:          exclusions,
	}
}
