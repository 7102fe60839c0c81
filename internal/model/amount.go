package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var amountCleaner = strings.NewReplacer(",", "", " ", "", "\u00a0", "")

// ParseAmount converts a ledger amount to a decimal. It never fails: blank or
// malformed input is zero so one bad row cannot abort a whole statement.
// Grouping separators are ignored and "(123.45)" reads as -123.45.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = amountCleaner.Replace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

// Amount is a decimal that decodes leniently from JSON numbers or strings.
// Anything unparseable, including null, decodes to zero.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = ParseAmount(s)
		return nil
	}
	a.Decimal = ParseAmount(string(data))
	return nil
}
