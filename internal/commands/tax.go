package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/format"
)

type taxOptions struct {
	repoDir      string
	from         string
	profit       string
	vatExclusive string
	vatInclusive string
	payroll      string
	salary       string
}

func newTaxCommand(a *app) *cobra.Command {
	var opts taxOptions

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Compute corporate tax, VAT and payroll levies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repoDir)
			if err != nil {
				return err
			}
			return runTax(cmd.OutOrStdout(), p, opts)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "repository directory")
	cmd.Flags().StringVar(&opts.from, "from", "", "take taxable profit from this trial balance (file or period)")
	cmd.Flags().StringVar(&opts.profit, "profit", "", "taxable profit")
	cmd.Flags().StringVar(&opts.vatExclusive, "vat-exclusive", "", "VAT-exclusive amount")
	cmd.Flags().StringVar(&opts.vatInclusive, "vat-inclusive", "", "VAT-inclusive amount")
	cmd.Flags().StringVar(&opts.payroll, "payroll", "", "annual payroll for SDL")
	cmd.Flags().StringVar(&opts.salary, "salary", "", "monthly remuneration for UIF")

	return cmd
}

func parseFlagAmount(name, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

func runTax(out io.Writer, p *project, opts taxOptions) error {
	f := p.formatter
	r := p.levies
	printed := false

	profitSource := opts.profit
	if opts.from != "" {
		entries, _, err := p.entries(opts.from)
		if err != nil {
			return err
		}
		ci, _ := p.builder.ComprehensiveIncome(entries, p.overrides)
		profitSource = ci.ProfitBeforeTax.String()
	}

	if profitSource != "" {
		profit, err := parseFlagAmount("profit", profitSource)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Taxable profit:        %s\n", f.Currency(profit))
		fmt.Fprintf(out, "Corporate tax (%s):  %s\n", format.Percent(r.CorporateTaxRate, 0), f.Currency(r.CorporateTax(profit)))
		printed = true
	}
	if opts.vatExclusive != "" {
		amt, err := parseFlagAmount("vat-exclusive", opts.vatExclusive)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "VAT on exclusive:      %s\n", f.Currency(r.VAT(amt)))
		printed = true
	}
	if opts.vatInclusive != "" {
		amt, err := parseFlagAmount("vat-inclusive", opts.vatInclusive)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "VAT in inclusive:      %s\n", f.Currency(r.VATFromInclusive(amt)))
		printed = true
	}
	if opts.payroll != "" {
		amt, err := parseFlagAmount("payroll", opts.payroll)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "SDL:                   %s\n", f.Currency(r.SDL(amt)))
		printed = true
	}
	if opts.salary != "" {
		amt, err := parseFlagAmount("salary", opts.salary)
		if err != nil {
			return err
		}
		employee, employer := r.UIF(amt)
		fmt.Fprintf(out, "UIF employee:          %s\n", f.Currency(employee))
		fmt.Fprintf(out, "UIF employer:          %s\n", f.Currency(employer))
		printed = true
	}

	if !printed {
		return fmt.Errorf("nothing to compute: pass --profit, --from, --vat-exclusive, --vat-inclusive, --payroll or --salary")
	}
	return nil
}
