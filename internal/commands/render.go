package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/statements/internal/fiscal"
	"github.com/cleared-dev/statements/internal/format"
	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
	"github.com/cleared-dev/statements/internal/statements"
)

// reportEnvelope wraps a Report with the metadata of one generation run.
type reportEnvelope struct {
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Business    string    `json:"business,omitempty" yaml:"business,omitempty"`
	Source      string    `json:"source" yaml:"source"`
	Period      *period   `json:"period,omitempty" yaml:"period,omitempty"`

	statements.Report `yaml:",inline"`
}

// period is the financial year a report covers. Dates are YYYY-MM-DD.
type period struct {
	Label string `json:"label" yaml:"label"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// periodOf returns the financial year named by a trial balance file such as
// FY2026.csv, or nil when the name is not a period label.
func periodOf(source string, startMonth time.Month) *period {
	fy, err := fiscal.ParseLabel(strings.TrimSuffix(source, filepath.Ext(source)))
	if err != nil {
		return nil
	}
	first, last := fiscal.Bounds(fy, startMonth)
	return &period{
		Label: fiscal.Label(fy),
		Start: first.Format(time.DateOnly),
		End:   last.Format(time.DateOnly),
	}
}

func newEnvelope(business, source string, p *period, r statements.Report) reportEnvelope {
	return reportEnvelope{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Business:    business,
		Source:      source,
		Period:      p,
		Report:      r,
	}
}

func renderReport(w io.Writer, outputFormat string, env reportEnvelope, f *format.Formatter, cat *lineitem.Catalogue) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	case "text", "":
		return renderText(w, env, f, cat)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

type textStyles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	amount  lipgloss.Style
	total   lipgloss.Style
	warn    lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		heading: r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Width(36),
		amount:  r.NewStyle().Width(20).Align(lipgloss.Right),
		total:   r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func renderText(w io.Writer, env reportEnvelope, f *format.Formatter, cat *lineitem.Catalogue) error {
	s := newTextStyles(w)
	var b strings.Builder

	row := func(label string, v decimal.Decimal) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.amount.Render(f.Currency(v))))
		b.WriteString("\n")
	}
	totalRow := func(label string, v decimal.Decimal) {
		b.WriteString(s.total.Render(lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.amount.Render(f.Currency(v)))))
		b.WriteString("\n")
	}
	section := func(title string, sec model.Section, ls lineitem.Section) {
		b.WriteString(s.heading.Render(title))
		b.WriteString("\n")
		for _, key := range cat.Keys(ls) {
			if v := sec.Line(key); !v.IsZero() {
				row("  "+humanize(key), v)
			}
		}
		totalRow("Total "+strings.ToLower(title), sec.Total)
		b.WriteString("\n")
	}

	title := "Financial statements"
	if env.Business != "" {
		title = env.Business + " - " + title
	}
	b.WriteString(s.title.Render(title))
	fmt.Fprintf(&b, "\nReport %s generated %s from %s\n", env.ID, env.GeneratedAt.Format(time.RFC3339), env.Source)
	if env.Period != nil {
		fmt.Fprintf(&b, "Financial year %s: %s to %s\n", env.Period.Label, env.Period.Start, env.Period.End)
	}
	b.WriteString("\n")

	pos := env.FinancialPosition
	b.WriteString(s.title.Render("Statement of financial position"))
	b.WriteString("\n\n")
	section("Current assets", pos.CurrentAssets, lineitem.CurrentAssets)
	section("Non-current assets", pos.NonCurrentAssets, lineitem.NonCurrentAssets)
	totalRow("TOTAL ASSETS", pos.TotalAssets)
	b.WriteString("\n")
	section("Equity", pos.Equity, lineitem.Equity)
	section("Current liabilities", pos.CurrentLiabilities, lineitem.CurrentLiabilities)
	section("Non-current liabilities", pos.NonCurrentLiabilities, lineitem.NonCurrentLiabilities)
	totalRow("TOTAL EQUITY AND LIABILITIES", pos.TotalEquityAndLiabilities)
	b.WriteString("\n")

	ci := env.ComprehensiveIncome
	b.WriteString(s.title.Render("Statement of comprehensive income"))
	b.WriteString("\n\n")
	row("Revenue", ci.Revenue)
	row("Cost of sales", ci.CostOfSales.Neg())
	totalRow("Gross profit", ci.GrossProfit)
	row("Other income", ci.OtherIncome)
	row("Distribution costs", ci.DistributionCosts.Neg())
	row("Administrative expenses", ci.AdministrativeExpenses.Neg())
	row("Other expenses", ci.OtherExpenses.Neg())
	totalRow("Operating profit", ci.OperatingProfit)
	row("Finance income", ci.FinanceIncome)
	row("Finance costs", ci.FinanceCosts.Neg())
	totalRow("Profit before tax", ci.ProfitBeforeTax)
	row("Income tax expense", ci.TaxExpense.Neg())
	totalRow("Profit for the year", ci.ProfitForYear)
	b.WriteString("\n")

	if names := env.Ratios.Names(); len(names) > 0 {
		b.WriteString(s.heading.Render("Ratios"))
		b.WriteString("\n")
		for _, name := range names {
			v, _ := env.Ratios.Get(name)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("  "+name), s.amount.Render(v.StringFixed(2))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if !env.Validation.IsBalanced {
		b.WriteString(s.warn.Render("Trial balance does not balance: difference " + f.Currency(env.Validation.Difference)))
		b.WriteString("\n")
	}
	if !env.Identity.Holds {
		msg := "Assets do not equal equity and liabilities: difference " + f.Currency(env.Identity.Difference)
		if env.Identity.ExplainedByProfit {
			msg += " (profit for the year not yet closed to retained earnings)"
		}
		b.WriteString(s.warn.Render(msg))
		b.WriteString("\n")
	}
	for _, x := range env.Unclassified {
		fmt.Fprintf(&b, "%s\n", s.warn.Render(fmt.Sprintf("Unclassified: %s %s (%s) %s", x.AccountNumber, x.AccountName, x.Reason, f.Currency(x.Balance))))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// humanize turns a line item key into a label: "trade_receivables" becomes
// "Trade receivables".
func humanize(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
