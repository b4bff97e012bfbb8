package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validates the effective configuration for syntax and semantic correctness.

This includes:
- Schema version compatibility (^1)
- Output format and pagination limits
- Collation locale and default sort key
- Logging level and format`,
		Example: `  # Validate current configuration
  feedquery config validate

  # Validate a specific file and show detailed information
  feedquery --config ./feedquery.yaml config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := configFromContext(cmd.Context())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Items per page: %d\n", cfg.Pagination.ItemsPerPage)
	cmd.Printf("  Max visible pages: %d\n", cfg.Pagination.MaxVisiblePages)
	cmd.Printf("  Locale: %s\n", cfg.Query.Locale)
	cmd.Printf("  All-categories value: %s\n", cfg.Query.AllCategories)
	cmd.Printf("  Default sort: %s\n", cfg.Query.SortBy())
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	printAliasDetails(cmd, cfg)
}

// printAliasDetails prints the field aliases in effect.
func printAliasDetails(cmd *cobra.Command, cfg *config.Config) {
	engine, err := cfg.Query.Engine()
	if err != nil {
		return
	}
	aliases := engine.Aliases()
	cmd.Println("  Field aliases:")
	cmd.Printf("    title: %v\n", aliases.Title)
	cmd.Printf("    search: %v\n", aliases.Search)
	cmd.Printf("    category: %v\n", aliases.Category)
	cmd.Printf("    date: %v\n", aliases.Date)
	cmd.Printf("    likes: %v\n", aliases.Likes)
	cmd.Printf("    comments: %v\n", aliases.Comments)
	cmd.Printf("    views: %v\n", aliases.Views)
	cmd.Printf("    attendees: %v\n", aliases.Attendees)
}
