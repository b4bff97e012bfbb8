package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
)

// NewCategoriesCmd creates the categories command, which lists the category
// vocabulary of the given collections.
func NewCategoriesCmd() *cobra.Command {
	var (
		inputs []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the distinct categories of a collection",
		Long: `Prints the distinct category values found in the collections, sorted,
with their original case. Values that differ only in case are listed
separately. Records without a category are ignored.`,
		Example: `  feedquery categories -i posts.json
  feedquery categories -i events.json -i ventures.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			format, err := resolveOutputFormat(output, cfg, config.FormatTable, config.FormatJSON)
			if err != nil {
				return err
			}

			engine, err := cfg.Query.Engine()
			if err != nil {
				return err
			}

			records, err := loadInputs(ctx, inputs)
			if err != nil {
				return err
			}

			categories := engine.UniqueCategories(records)
			logger.Debug().Ctx(ctx).
				Str("operation", "categories").
				Int("records", len(records)).
				Int("categories", len(categories)).
				Msg("collected categories")

			if format == config.FormatJSON {
				return renderJSON(cmd.OutOrStdout(), categories)
			}
			for _, c := range categories {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addInputFlag(cmd, &inputs)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")

	return cmd
}
