// Package format renders amounts and ratios for display.
package format

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats values for one locale and currency symbol. It is safe for
// concurrent use.
type Formatter struct {
	symbol  string
	group   string
	decimal string
}

// New creates a Formatter for locale (a BCP 47 tag such as "en" or "en-ZA").
// An unparseable locale falls back to English. An empty symbol omits it.
func New(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	f := &Formatter{symbol: symbol}
	f.group, f.decimal = separators(message.NewPrinter(tag))
	return f
}

// separators reads the locale's grouping and decimal separators off a
// formatted sample. A sample that does not split around its digits falls back
// to English separators.
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	parts := strings.FieldsFunc(sample, unicode.IsDigit)
	if len(parts) < 2 {
		return ",", "."
	}
	return parts[0], parts[len(parts)-1]
}

// Default returns the English formatter with the rand symbol.
func Default() *Formatter {
	return New("en", "R")
}

// Amount formats a value to two decimals with locale grouping and no symbol.
// Digits come from the decimal itself, so amounts of any size are exact.
func (f *Formatter) Amount(v decimal.Decimal) string {
	v = v.Round(2)
	digits := v.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if v.IsNegative() {
		b.WriteString("-")
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	b.WriteString(f.decimal)
	b.WriteString(frac)
	return b.String()
}

// Currency formats a value like Amount with the symbol in front:
// "R 1,234.56" or "-R 1,234.56".
func (f *Formatter) Currency(v decimal.Decimal) string {
	if f.symbol == "" {
		return f.Amount(v)
	}
	v = v.Round(2)
	s := f.symbol + " " + f.Amount(v.Abs())
	if v.IsNegative() {
		return "-" + s
	}
	return s
}

// Percent formats a ratio as a percentage with the given decimal places,
// so 0.27 becomes "27.0%" at one place.
func Percent(ratio decimal.Decimal, places int32) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}
