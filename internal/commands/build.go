package commands

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/gitops"
	"github.com/cleared-dev/statements/internal/statements"
)

type buildOptions struct {
	repoDir string
	format  string
	out     string
	strict  bool
	commit  bool
}

func newBuildCommand(a *app) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build <trial-balance.csv | period>",
		Short: "Build the financial statements and ratios from a trial balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts.repoDir)
			if err != nil {
				return err
			}
			return a.runBuild(cmd.OutOrStdout(), p, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "repository directory")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text, json or yaml (default from statements.yaml)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the trial balance or the accounting identity does not hold")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "commit the written report (requires --out inside the repository)")

	return cmd
}

func (a *app) runBuild(out io.Writer, p *project, source string, opts buildOptions) error {
	if opts.commit && opts.out == "" {
		return fmt.Errorf("--commit requires --out")
	}
	if opts.commit && !gitops.IsRepo(p.root) {
		return fmt.Errorf("--commit: %s is not a git repository (run statements init without --no-git)", p.root)
	}
	outputFormat := opts.format
	if outputFormat == "" {
		outputFormat = p.cfg.Reporting.Format
	}

	entries, path, err := p.entries(source)
	if err != nil {
		return err
	}

	for _, me := range p.mappingErrors {
		a.logger.Warn("account mapping", slog.String("account", me.AccountNumber), slog.String("line_item", me.LineItem))
	}

	report := p.builder.Build(entries, p.overrides)
	for _, x := range report.Unclassified {
		a.logger.Warn("entry excluded from statements",
			slog.Int("index", x.Index),
			slog.String("account", x.AccountNumber),
			slog.String("reason", string(x.Reason)),
			slog.String("balance", x.Balance.StringFixed(2)))
	}
	a.logger.Info("built statements",
		slog.String("source", path),
		slog.Int("entries", len(entries)),
		slog.Bool("balanced", report.Validation.IsBalanced),
		slog.Bool("identity", report.Identity.Holds))

	if opts.strict {
		if !report.Validation.IsBalanced {
			return fmt.Errorf("%s: %w by %s", source, errUnbalanced, p.formatter.Currency(report.Validation.Difference))
		}
		if err := statements.CheckIdentity(report.FinancialPosition, p.builder.Tolerance()); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
	}

	start, err := p.cfg.StartMonth()
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	env := newEnvelope(p.cfg.Business.Name, name, periodOf(name, start), report)
	var buf bytes.Buffer
	if err := renderReport(&buf, outputFormat, env, p.formatter, p.catalogue); err != nil {
		return err
	}

	if opts.out == "" {
		_, err := out.Write(buf.Bytes())
		return err
	}

	outPath := opts.out
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(p.root, outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s (%s)\n", outPath, env.ID)

	if !opts.commit {
		return nil
	}
	rel, err := filepath.Rel(p.root, outPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("--commit: %s is outside the repository", outPath)
	}
	author := gitops.Author{Name: p.cfg.Git.AuthorName, Email: p.cfg.Git.AuthorEmail}
	hash, err := gitops.Commit(p.root, "report: "+filepath.Base(path), author, rel)
	if err != nil {
		return fmt.Errorf("committing report: %w", err)
	}
	fmt.Fprintf(out, "Committed %s (%s)\n", rel, hash)
	return nil
}
