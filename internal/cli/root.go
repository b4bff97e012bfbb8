package cli

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/comunidad/feedquery/internal/config"
	"github.com/comunidad/feedquery/internal/logging"
)

// ErrNotTerminal is returned by interactive commands outside a terminal.
var ErrNotTerminal = errors.New("interactive mode requires a terminal")

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type configKey struct{}

// contextWithConfig stores the effective configuration in ctx.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the configuration loaded by the root command, or
// the defaults when a command runs without it (tests calling RunE directly).
func configFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.New()
}

// NewRootCmd creates the root Cobra command for the feedquery CLI.
// It loads configuration, wires logging and tracing, and registers the
// query, categories, window, browse and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:   "feedquery",
		Short: "Filter, sort and paginate community feeds",
		Long: `feedquery runs the list pipeline of the community platform over exported
collections (blog posts, events, ventures, members): free-text search,
category filter, recent/oldest/popular/title ordering and windowed pagination.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			result := setupLogging(cmd, cfg)
			logResult = &result

			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logResult.Close()
		},
	}

	cmd.PersistentFlags().String("config", "", "path to a config file merged over ~/.feedquery/config.yaml")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format (console, json)")

	cmd.AddCommand(
		NewQueryCmd(),
		NewCategoriesCmd(),
		NewWindowCmd(),
		NewBrowseCmd(),
		newConfigCmd(),
	)

	return cmd
}

// Execute runs the root command with a background context.
func Execute(ver string) error {
	ctx := context.Background()
	return NewRootCmd(ver).ExecuteContext(ctx)
}

const rootCmdExample = `  # First page of the blog, newest first
  feedquery query -i posts.json

  # Search events and ventures together, most popular first, page 2
  feedquery query -i events.json -i ventures.yaml --search feria --sort popular --page 2

  # Only one category, alphabetical, as JSON
  feedquery query -i posts.json --category Tecnología --sort title --output json

  # Category vocabulary of a collection
  feedquery categories -i posts.json

  # Pager window for 47 items, 10 per page, on page 3
  feedquery window --total 47 --per-page 10 --page 3

  # Interactive browser
  feedquery browse -i posts.json`
