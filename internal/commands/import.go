package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/fiscal"
	"github.com/cleared-dev/statements/internal/importer"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

type importOptions struct {
	repoDir string
	period  string
	asOf    string
}

func newImportCommand(a *app) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <format> [file]",
		Short: "Convert an accounting package trial balance export",
		Long: `Convert an accounting package trial balance export into the canonical CSV.

With a file, the result is saved as trial-balance/<period>.csv when --period or
--as-of is given, and printed otherwise. Without a file, every CSV waiting in
import/ is converted to the period named by its file name and moved to
import/processed/.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repoDir)
			if err != nil {
				return err
			}
			parser := importer.DefaultRegistry().Get(args[0])
			if parser == nil {
				return fmt.Errorf("unknown import format %q (available: %s)",
					args[0], strings.Join(importer.DefaultRegistry().Formats(), ", "))
			}
			if len(args) == 1 {
				return a.runImportPending(cmd.OutOrStdout(), p, parser)
			}
			return a.runImportFile(cmd.OutOrStdout(), p, parser, args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "repository directory")
	cmd.Flags().StringVar(&opts.period, "period", "", "period label to save under, e.g. FY2026")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "reporting date (YYYY-MM-DD); saves under its financial year label")

	return cmd
}

func (a *app) runImportFile(out io.Writer, p *project, parser importer.Parser, path string, opts importOptions) error {
	entries, err := importer.ParseFile(parser, path)
	if err != nil {
		return err
	}

	period := opts.period
	if period == "" && opts.asOf != "" {
		date, err := time.Parse(time.DateOnly, opts.asOf)
		if err != nil {
			return fmt.Errorf("parsing --as-of: %w", err)
		}
		start, err := p.cfg.StartMonth()
		if err != nil {
			return err
		}
		period = fiscal.Label(fiscal.FinancialYear(date, start))
	}

	if period == "" {
		return trialbalance.WriteEntries(out, entries)
	}
	period, err = periodLabel(period)
	if err != nil {
		return fmt.Errorf("--period: %w", err)
	}

	if err := trialbalance.NewService(p.root).Save(period, entries); err != nil {
		return err
	}
	a.logger.Info("imported trial balance", slog.String("file", path), slog.String("format", parser.Format()), slog.String("period", period), slog.Int("entries", len(entries)))
	fmt.Fprintf(out, "Imported %d entries into %s\n", len(entries), period)
	return nil
}

func (a *app) runImportPending(out io.Writer, p *project, parser importer.Parser) error {
	files, err := importer.Scan(p.root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "Nothing to import")
		return nil
	}

	tb := trialbalance.NewService(p.root)
	for _, f := range files {
		entries, err := importer.ParseFile(parser, f.Path)
		if err != nil {
			return err
		}
		period, err := periodLabel(strings.TrimSuffix(f.Name, filepath.Ext(f.Name)))
		if err != nil {
			return fmt.Errorf("%s: name pending files after their period: %w", f.Name, err)
		}
		if err := tb.Save(period, entries); err != nil {
			return err
		}
		if err := importer.MarkProcessed(p.root, f.Name); err != nil {
			return err
		}
		a.logger.Info("imported trial balance", slog.String("file", f.Name), slog.String("period", period), slog.Int("entries", len(entries)))
		fmt.Fprintf(out, "Imported %s into %s (%d entries)\n", f.Name, period, len(entries))
	}
	return nil
}

// periodLabel normalizes a financial year label such as "fy2026" to "FY2026".
func periodLabel(s string) (string, error) {
	fy, err := fiscal.ParseLabel(s)
	if err != nil {
		return "", err
	}
	return fiscal.Label(fy), nil
}
