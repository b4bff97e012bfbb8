package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
)

// newConfigCmd groups the configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage feedquery configuration",
		Long: `Shows, validates and initializes the feedquery configuration.

Settings are read from ~/.feedquery/config.yaml (or $FEEDQUERY_HOME/config.yaml),
then from the file given with --config, then from FEEDQUERY_* environment
variables.`,
	}

	cmd.AddCommand(
		NewConfigShowCmd(),
		NewConfigValidateCmd(),
		NewConfigInitCmd(),
	)

	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  feedquery config show
  feedquery --config ./feedquery.yaml config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())

			switch output {
			case "", "yaml":
				data, err := cfg.Marshal()
				if err != nil {
					return fmt.Errorf("rendering config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case config.FormatJSON:
				return renderJSON(cmd.OutOrStdout(), cfg)
			default:
				return fmt.Errorf("%w: %q (must be yaml or json)", config.ErrInvalidFormat, output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: yaml or json")

	return cmd
}
