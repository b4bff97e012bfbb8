package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
	"github.com/comunidad/feedquery/internal/pagination"
)

// ErrTotalRequired is returned when window runs without --total.
var ErrTotalRequired = errors.New("--total is required")

// NewWindowCmd creates the window command, which computes the pager window
// for a result size without reading any collection.
func NewWindowCmd() *cobra.Command {
	var (
		total    int
		perPage  int
		page     int
		maxPages int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Compute the pager window for a result size",
		Long: `Computes which page buttons a pager shows for a result of --total items:
at most --max-pages buttons centered on --page and shifted to stay full near
either edge, whether first/last jumps are needed, and the item range of the
page. Out-of-range values are clamped, not rejected.`,
		Example: `  feedquery window --total 47 --per-page 10 --page 3
  feedquery window --total 200 --page 10 --max-pages 7 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("total") {
				return ErrTotalRequired
			}
			cfg := configFromContext(cmd.Context())

			format, err := resolveOutputFormat(output, cfg, config.FormatTable, config.FormatJSON)
			if err != nil {
				return err
			}

			window := pagination.Calculate(
				total,
				withDefault(perPage, cfg.Pagination.ItemsPerPage),
				page,
				withDefault(maxPages, cfg.Pagination.MaxVisiblePages),
			)

			if format == config.FormatJSON {
				return renderJSON(cmd.OutOrStdout(), window)
			}
			return renderWindowTable(cmd.OutOrStdout(), window)
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "number of items in the result")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "current page (1-based)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "pager width in page buttons (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")

	return cmd
}
