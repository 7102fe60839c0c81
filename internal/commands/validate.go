package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/trialbalance"
)

// errUnbalanced is returned by commands that refuse an unbalanced trial balance.
var errUnbalanced = errors.New("trial balance does not balance")

func newValidateCommand(a *app) *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "validate <trial-balance.csv | period>",
		Short: "Check that a trial balance balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(repoDir)
			if err != nil {
				return err
			}
			return a.runValidate(cmd.OutOrStdout(), p, args[0])
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository directory")

	return cmd
}

func (a *app) runValidate(out io.Writer, p *project, source string) error {
	entries, path, err := p.entries(source)
	if err != nil {
		return err
	}

	res := trialbalance.ValidateWithTolerance(entries, p.builder.Tolerance())
	f := p.formatter

	fmt.Fprintf(out, "Entries:       %d\n", len(entries))
	fmt.Fprintf(out, "Total debits:  %s\n", f.Currency(res.TotalDebits))
	fmt.Fprintf(out, "Total credits: %s\n", f.Currency(res.TotalCredits))
	fmt.Fprintf(out, "Difference:    %s\n", f.Currency(res.Difference))

	for _, issue := range p.issues(entries) {
		a.logger.Warn("trial balance row",
			slog.String("file", path),
			slog.Int("row", issue.Row),
			slog.String("account", issue.AccountNumber),
			slog.String("kind", string(issue.Kind)),
			slog.String("detail", issue.Detail))
	}

	if !res.IsBalanced {
		fmt.Fprintln(out, "Status:        UNBALANCED")
		return fmt.Errorf("%s: %w by %s", source, errUnbalanced, f.Currency(res.Difference))
	}
	fmt.Fprintln(out, "Status:        balanced")
	return nil
}
