package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/config"
	"github.com/cleared-dev/statements/internal/gitops"
	"github.com/cleared-dev/statements/internal/trialbalance"
)

// reportsDir holds generated reports inside a project.
const reportsDir = "reports"

func newInitCommand(a *app) *cobra.Command {
	var name string
	var entityType string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new statements project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return a.runInit(cmd.OutOrStdout(), absDir, name, entityType, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "pty_ltd", "entity type: pty_ltd or sole_proprietor")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git init and the initial commit")

	return cmd
}

func (a *app) runInit(out io.Writer, dir, name, entityType string, noGit bool) error {
	cfg := config.Default(name, entityType)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create directory structure.
	dirs := []string{
		"accounts",
		trialbalance.Dir,
		reportsDir,
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(config.Path(dir), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	chart := accounts.DefaultChart(entityType)
	svc := accounts.NewService(chart)
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// The chart already carries default line items; the mapping file is for
	// the user's own overrides.
	if err := accounts.SaveMapping(dir, accounts.Mapping{}); err != nil {
		return fmt.Errorf("writing account mapping: %w", err)
	}

	gitignore := ".env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	for _, d := range []string{"import", trialbalance.Dir, reportsDir} {
		if err := os.WriteFile(filepath.Join(dir, d, ".gitkeep"), []byte{}, 0o644); err != nil {
			return fmt.Errorf("writing .gitkeep: %w", err)
		}
	}

	if noGit {
		fmt.Fprintf(out, "Initialized statements project at %s\n", dir)
		return nil
	}
	if !gitops.Available() {
		a.logger.Warn("git not found, skipping initial commit")
		fmt.Fprintf(out, "Initialized statements project at %s\n", dir)
		return nil
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return err
	}

	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := gitops.CommitAll(dir, "init: Initialize "+name, author)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized statements project at %s (%s)\n", dir, hash)
	return nil
}
