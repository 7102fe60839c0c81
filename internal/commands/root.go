package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/buildinfo"
	"github.com/cleared-dev/statements/internal/config"
	"github.com/cleared-dev/statements/internal/logging"
)

// app carries process-level state shared by every subcommand. It is filled in
// by the root command's PersistentPreRunE.
type app struct {
	env    *config.Env
	logger *slog.Logger

	logFormat string
	logLevel  string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:     "statements",
		Short:   "Financial statements from a trial balance",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json (default from STATEMENTS_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default from STATEMENTS_LOG_LEVEL)")

	rootCmd.AddCommand(
		newInitCommand(a),
		newClassifyCommand(a),
		newValidateCommand(a),
		newBuildCommand(a),
		newImportCommand(a),
		newTaxCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		env.LogFormat = a.logFormat
	}
	if a.logLevel != "" {
		env.LogLevel = a.logLevel
	}

	logger, err := logging.New(cmd.ErrOrStderr(), env.LogFormat, env.LogLevel)
	if err != nil {
		return err
	}
	a.env = env
	a.logger = logger
	return nil
}
