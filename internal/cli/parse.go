package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/resty/internal/logging"
	"github.com/codex-k8s/resty/internal/query"
	"github.com/codex-k8s/resty/internal/schema"
)

// newParseCommand creates the "parse" subcommand that coerces a query string with the schema.
func newParseCommand(opts *Options) *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "parse [QUERY]",
		Short: "Validate a query string and print the coerced parameters",
		Example: `  restyctl parse 'item_id=1&item_id=2&limit=1000'
  restyctl parse --url 'https://example.com/items?limit=5' -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			format, err := parseFormat(opts.Output)
			if err != nil {
				return err
			}

			s, err := loadSchema(opts)
			if err != nil {
				return err
			}

			entries, err := entriesFromInput(args, rawURL)
			if err != nil {
				return err
			}
			logger.Debug("query decoded", "params", len(entries), "schema", opts.SchemaPath)

			values, err := query.Parse(entries, s)
			if err != nil {
				var verr *schema.ValidationError
				if errors.As(err, &verr) {
					logger.Warn("query parameters rejected", "fields", len(verr.Fields))
					if werr := writeOutput(cmd.OutOrStdout(), format, map[string]any{"errors": verr.Fields}); werr != nil {
						return werr
					}
				}
				return err
			}

			logger.Debug("query parameters accepted", "fields", len(values))
			return writeOutput(cmd.OutOrStdout(), format, values)
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "Full URL whose query string is parsed instead of QUERY")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format (json, yaml)")
	cmd.Flags().StringVar(&opts.Unknown, "unknown", opts.Unknown, "Override the schema policy for undeclared parameters (raise, exclude, include)")

	return cmd
}

// entriesFromInput decodes either the --url flag or the positional query string.
func entriesFromInput(args []string, rawURL string) (query.Entries, error) {
	if rawURL != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("pass either QUERY or --url, not both")
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse --url: %w", err)
		}
		entries, err := query.FromURL(u)
		if err != nil {
			return nil, fmt.Errorf("parse query string: %w", err)
		}
		return entries, nil
	}

	if len(args) == 0 {
		return nil, nil
	}
	entries, err := query.ParseQuery(strings.TrimPrefix(args[0], "?"))
	if err != nil {
		return nil, fmt.Errorf("parse query string: %w", err)
	}
	return entries, nil
}
