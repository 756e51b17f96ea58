package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/resty/internal/logging"
)

// newSchemaCommand creates the "schema" group with inspection helpers.
func newSchemaCommand(opts *Options) *cobra.Command {
	return newGroupCommand("schema", "Inspect the parameter schema",
		newSchemaShowCommand(opts),
		newSchemaCheckCommand(opts),
	)
}

// newSchemaShowCommand prints the loaded schema with defaults filled in.
func newSchemaShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the normalized schema as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSchema(opts)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), formatYAML, s)
		},
	}
}

// newSchemaCheckCommand validates the schema declaration and reports its size.
func newSchemaCheckCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the schema declaration for mistakes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())

			s, err := loadSchema(opts)
			if err != nil {
				return err
			}

			required := 0
			for _, f := range s.Fields {
				if f.Required {
					required++
				}
			}
			logger.Info("schema is valid", "path", opts.SchemaPath, "fields", len(s.Fields), "required", required)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fields (%d required), unknown=%s\n", opts.SchemaPath, len(s.Fields), required, s.Unknown)
			return err
		},
	}
}
