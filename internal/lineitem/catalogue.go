// Package lineitem defines the closed catalogue of statement line items and
// the section each one belongs to.
package lineitem

import "fmt"

// Section is a block of a financial statement.
type Section string

const (
	CurrentAssets         Section = "current_assets"
	NonCurrentAssets      Section = "non_current_assets"
	Equity                Section = "equity"
	CurrentLiabilities    Section = "current_liabilities"
	NonCurrentLiabilities Section = "non_current_liabilities"
	ComprehensiveIncome   Section = "comprehensive_income"
)

// PositionSections returns the statement of financial position sections in
// presentation order.
func PositionSections() []Section {
	return []Section{CurrentAssets, NonCurrentAssets, Equity, CurrentLiabilities, NonCurrentLiabilities}
}

// IsAsset reports whether s is an asset section.
func (s Section) IsAsset() bool {
	return s == CurrentAssets || s == NonCurrentAssets
}

// IsPosition reports whether s belongs to the statement of financial position.
func (s Section) IsPosition() bool {
	switch s {
	case CurrentAssets, NonCurrentAssets, Equity, CurrentLiabilities, NonCurrentLiabilities:
		return true
	}
	return false
}

// Rule is how an entry's adjusted balance is added to its line.
type Rule string

const (
	// Signed adds the adjusted balance as-is.
	Signed Rule = "signed"
	// Absolute adds the magnitude of the adjusted balance.
	Absolute Rule = "absolute"
)

// Placement tags a line item with its section and aggregation rule.
type Placement struct {
	Section Section
	Rule    Rule
}

// Item is a catalogue entry.
type Item struct {
	Key     string
	Section Section
}

// Catalogue is an immutable mapping from line-item key to placement. Build it
// once and share it; nothing mutates it after New returns.
type Catalogue struct {
	placements map[string]Placement
	order      map[Section][]string
}

// New builds a catalogue. Each key must appear exactly once.
func New(items []Item) (*Catalogue, error) {
	c := &Catalogue{
		placements: make(map[string]Placement, len(items)),
		order:      make(map[Section][]string),
	}
	for _, it := range items {
		if it.Key == "" {
			return nil, fmt.Errorf("empty line item key in section %s", it.Section)
		}
		if prev, ok := c.placements[it.Key]; ok {
			return nil, fmt.Errorf("line item %q listed in both %s and %s", it.Key, prev.Section, it.Section)
		}
		rule := Absolute
		if it.Section.IsAsset() {
			rule = Signed
		}
		c.placements[it.Key] = Placement{Section: it.Section, Rule: rule}
		c.order[it.Section] = append(c.order[it.Section], it.Key)
	}
	return c, nil
}

// Lookup returns the placement of key.
func (c *Catalogue) Lookup(key string) (Placement, bool) {
	p, ok := c.placements[key]
	return p, ok
}

// Contains reports whether key is in the catalogue.
func (c *Catalogue) Contains(key string) bool {
	_, ok := c.placements[key]
	return ok
}

// Keys returns the keys of a section in catalogue order.
func (c *Catalogue) Keys(s Section) []string {
	keys := c.order[s]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
