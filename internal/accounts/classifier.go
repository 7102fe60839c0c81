package accounts

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

// maxNumberDigits bounds the digit run parsed from an account number.
const maxNumberDigits = 9

// Classifier assigns account types and suggests line items. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	rules Rules
}

// NewClassifier creates a Classifier over a private copy of rules.
func NewClassifier(rules Rules) *Classifier {
	r := Rules{
		TypeRanges:  append([]TypeRange(nil), rules.TypeRanges...),
		ByThousands: rules.ByThousands,
		ItemRanges:  append([]ItemRange(nil), rules.ItemRanges...),
		Keywords:    make([]KeywordRule, len(rules.Keywords)),
	}
	for i, kw := range rules.Keywords {
		r.Keywords[i] = KeywordRule{
			AllOf: lowerAll(kw.AllOf),
			AnyOf: lowerAll(kw.AnyOf),
			Item:  kw.Item,
		}
	}
	return &Classifier{rules: r}
}

// Classify returns the account type for an account number. Numbers outside
// every explicit range fall back to their thousands digit; anything that
// cannot be read as a number is AccountTypeUnknown.
func (c *Classifier) Classify(accountNumber string) model.AccountType {
	n, ok := ParseAccountNumber(accountNumber)
	if !ok {
		return model.AccountTypeUnknown
	}
	for _, tr := range c.rules.TypeRanges {
		if n >= tr.Low && n <= tr.High {
			return tr.Type
		}
	}
	d := n / 1000
	if d < 1 || d > 9 {
		return model.AccountTypeUnknown
	}
	if t := c.rules.ByThousands[d]; t != "" {
		return t
	}
	return model.AccountTypeUnknown
}

// SuggestLineItems returns candidate line items for an account from the number
// sub-ranges and the name keywords, deduplicated and sorted. The result is a
// hint for a human; the builders only use a resolved mapping.
func (c *Classifier) SuggestLineItems(accountNumber, accountName string) []string {
	found := make(map[string]struct{})

	if n, ok := ParseAccountNumber(accountNumber); ok {
		for _, ir := range c.rules.ItemRanges {
			if n >= ir.Low && n <= ir.High {
				found[ir.Item] = struct{}{}
				break
			}
		}
	}

	name := strings.ToLower(accountName)
	if strings.TrimSpace(name) != "" {
		for _, kw := range c.rules.Keywords {
			if kw.matches(name) {
				found[kw.Item] = struct{}{}
			}
		}
	}

	items := make([]string, 0, len(found))
	for item := range found {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Resolve returns the effective account type and line item of an entry.
// Manual values on the entry win; otherwise the type comes from Classify and
// the line item from overrides keyed by account number.
func (c *Classifier) Resolve(entry model.LedgerEntry, overrides map[string]string) (model.AccountType, string) {
	t := entry.AccountType
	if t == "" || t == model.AccountTypeUnknown {
		t = c.Classify(entry.AccountNumber)
	}

	item := strings.TrimSpace(entry.MappedLineItem)
	if item == "" && overrides != nil {
		item = strings.TrimSpace(overrides[strings.TrimSpace(entry.AccountNumber)])
	}
	return t, item
}

// ParseAccountNumber reads the leading digit run of an account number, so
// "1000", "1000-01" and "1000/000" all read as 1000.
func ParseAccountNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || end > maxNumberDigits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (kw KeywordRule) matches(name string) bool {
	for _, w := range kw.AllOf {
		if !strings.Contains(name, w) {
			return false
		}
	}
	if len(kw.AnyOf) == 0 {
		return len(kw.AllOf) > 0
	}
	for _, w := range kw.AnyOf {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
