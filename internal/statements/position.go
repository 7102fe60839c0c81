package statements

import (
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

// FinancialPosition builds the statement of financial position.
//
// Asset balances are taken as recorded; every other type is negated first.
// Asset lines add the adjusted balance, equity and liability lines add its
// magnitude. Entries without a line item, with an unknown type, or mapped
// outside the balance sheet are skipped and reported as exclusions. The
// accounting identity is not enforced here; see CheckIdentity.
func (b *Builder) FinancialPosition(entries []model.LedgerEntry, overrides map[string]string) (model.FinancialPosition, []Exclusion) {
	pos := model.FinancialPosition{
		CurrentAssets:         b.newSection(lineitem.CurrentAssets),
		NonCurrentAssets:      b.newSection(lineitem.NonCurrentAssets),
		Equity:                b.newSection(lineitem.Equity),
		CurrentLiabilities:    b.newSection(lineitem.CurrentLiabilities),
		NonCurrentLiabilities: b.newSection(lineitem.NonCurrentLiabilities),
	}

	var excluded []Exclusion
	for i, e := range entries {
		typ, item := b.resolver.Resolve(e, overrides)
		if item == "" {
			excluded = append(excluded, exclude(i, e, typ, item, StatementFinancialPosition, ReasonNoLineItem))
			continue
		}
		if !typ.Known() {
			excluded = append(excluded, exclude(i, e, typ, item, StatementFinancialPosition, ReasonUnknownType))
			continue
		}
		placement, ok := b.catalogue.Lookup(item)
		if !ok || !placement.Section.IsPosition() {
			excluded = append(excluded, exclude(i, e, typ, item, StatementFinancialPosition, ReasonNotInSection))
			continue
		}

		adjusted := e.Balance
		if typ != model.AccountTypeAsset {
			adjusted = adjusted.Neg()
		}
		if placement.Rule == lineitem.Absolute {
			adjusted = adjusted.Abs()
		}

		section := positionSection(&pos, placement.Section)
		section.Lines[item] = section.Lines[item].Add(adjusted)
	}

	for _, s := range lineitem.PositionSections() {
		b.total(positionSection(&pos, s), s)
	}
	pos.TotalAssets = pos.CurrentAssets.Total.Add(pos.NonCurrentAssets.Total)
	pos.TotalEquityAndLiabilities = pos.Equity.Total.Add(pos.CurrentLiabilities.Total).Add(pos.NonCurrentLiabilities.Total)

	return pos, excluded
}

func positionSection(pos *model.FinancialPosition, s lineitem.Section) *model.Section {
	switch s {
	case lineitem.CurrentAssets:
		return &pos.CurrentAssets
	case lineitem.NonCurrentAssets:
		return &pos.NonCurrentAssets
	case lineitem.Equity:
		return &pos.Equity
	case lineitem.CurrentLiabilities:
		return &pos.CurrentLiabilities
	case lineitem.NonCurrentLiabilities:
		return &pos.NonCurrentLiabilities
	}
	panic("statements: not a financial position section: " + string(s))
}
