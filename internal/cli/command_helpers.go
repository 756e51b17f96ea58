package cli

import (
	"github.com/spf13/cobra"

	"github.com/codex-k8s/resty/internal/schema"
)

// newGroupCommand builds a cobra.Command that groups subcommands.
func newGroupCommand(use, short string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	if len(subcommands) > 0 {
		cmd.AddCommand(subcommands...)
	}
	return cmd
}

// loadSchema loads the schema named by opts and applies the unknown-policy override.
func loadSchema(opts *Options) (*schema.Schema, error) {
	s, err := schema.Load(opts.SchemaPath)
	if err != nil {
		return nil, err
	}
	if opts.Unknown != "" {
		policy, err := schema.ParseUnknownPolicy(opts.Unknown)
		if err != nil {
			return nil, err
		}
		s.Unknown = policy
	}
	return s, nil
}
