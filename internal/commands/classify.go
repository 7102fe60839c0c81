package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newClassifyCommand(a *app) *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "classify <account-number> [account name...]",
		Short: "Show the account type and suggested line items for an account",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(repoDir)
			if err != nil {
				return err
			}
			return runClassify(cmd.OutOrStdout(), p, args[0], strings.Join(args[1:], " "))
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository directory")

	return cmd
}

func runClassify(out io.Writer, p *project, number, name string) error {
	typ := p.classifier.Classify(number)
	suggestions := p.classifier.SuggestLineItems(number, name)

	fmt.Fprintf(out, "Account:     %s\n", number)
	if name != "" {
		fmt.Fprintf(out, "Name:        %s\n", name)
	}
	fmt.Fprintf(out, "Type:        %s\n", typ)
	if acct, ok := p.chart.Get(number); ok {
		fmt.Fprintf(out, "Chart:       %s (%s)\n", acct.Name, acct.Type)
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "Suggestions: (none)")
	} else {
		fmt.Fprintf(out, "Suggestions: %s\n", strings.Join(suggestions, ", "))
	}
	if item, ok := p.overrides[number]; ok {
		fmt.Fprintf(out, "Mapped to:   %s\n", item)
	}
	return nil
}
