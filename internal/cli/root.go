// Package cli defines the command-line interface for restyctl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/resty/internal/env"
	"github.com/codex-k8s/resty/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	SchemaPath string
	Output     string
	Unknown    string
	LogLevel   logging.Level
}

// Execute builds the root command and runs it under ctx with the provided args and logger.
// Defaults come from RESTY_* variables in the process environment and the optional env file.
func Execute(ctx context.Context, args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts, err := optionsFromEnv(env.FromOS())
	if err != nil {
		return err
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "restyctl",
		Short:        "restyctl validates query strings against a parameter schema",
		Long:         "restyctl groups repeated query parameters, coerces them with a YAML field schema and prints the typed result or the per-field validation errors.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.SchemaPath, "schema", "s", opts.SchemaPath, "Path to the YAML parameter schema")
	cmd.PersistentFlags().String("log-level", opts.LogLevel.String(), "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newParseCommand(opts),
		newSchemaCommand(opts),
	)

	return cmd
}
