package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
)

// queryParams holds the flags of the query command.
type queryParams struct {
	inputs   []string
	search   string
	category string
	sortBy   string
	order    string
	page     int
	perPage  int
	maxPages int
	output   string
}

// NewQueryCmd creates the query command, which prints one page of the
// filtered and sorted collection.
func NewQueryCmd() *cobra.Command {
	var params queryParams

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, sort and paginate a collection",
		Long: `Runs the list pipeline over one or more collections and prints one page.

Records are matched case-insensitively against the search term on their
title, name, description and content fields. A category filter keeps records
whose category equals the given value ignoring case; "todas" or an empty value
keeps every category. Sort keys:
  recent   newest first (default)
  oldest   oldest first
  popular  3*likes + 2*comments + views + attendees, highest first
  title    alphabetical, using the configured collation locale
  none     input order

--order asc|desc overrides the natural direction of the sort key.
Pages past the end print no records; the pager still reports the totals.`,
		Example: `  # First page, newest first
  feedquery query -i posts.json

  # Second page of popular events matching "feria"
  feedquery query -i events.json --search feria --sort popular --page 2

  # Oldest records last, as NDJSON
  feedquery query -i posts.json --sort oldest --order desc --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeQuery(cmd, params)
		},
	}

	addInputFlag(cmd, &params.inputs)
	cmd.Flags().StringVar(&params.search, "search", "", "case-insensitive search term")
	cmd.Flags().StringVar(&params.category, "category", "", "category to keep (default: all)")
	cmd.Flags().StringVar(&params.sortBy, "sort", "", "sort key: recent, oldest, popular, title or none (default from config)")
	cmd.Flags().StringVar(&params.order, "order", "", "sort direction: asc or desc (default: natural for the key)")
	cmd.Flags().IntVar(&params.page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().IntVar(&params.perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&params.maxPages, "max-pages", 0, "pager width in page buttons (default from config)")
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: table, json or ndjson (default from config)")

	return cmd
}

func executeQuery(cmd *cobra.Command, params queryParams) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	format, err := resolveOutputFormat(params.output, cfg,
		config.FormatTable, config.FormatJSON, config.FormatNDJSON)
	if err != nil {
		return err
	}

	spec, err := buildFilterSpec(cfg, params.search, params.category, params.sortBy, params.order)
	if err != nil {
		return err
	}

	engine, err := cfg.Query.Engine()
	if err != nil {
		return err
	}

	records, err := loadInputs(ctx, params.inputs)
	if err != nil {
		return err
	}

	req := pagination.PageRequest{
		Page:         params.page,
		ItemsPerPage: withDefault(params.perPage, cfg.Pagination.ItemsPerPage),
	}.Normalize()
	maxPages := withDefault(params.maxPages, cfg.Pagination.MaxVisiblePages)

	result := ApplyQuery(ctx, engine, records, spec, req)
	window := pagination.Calculate(result.Total, req.ItemsPerPage, result.Page, maxPages)

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(out, queryOutput{Result: result, Window: window})
	case config.FormatNDJSON:
		return renderQueryNDJSON(out, result, window)
	default:
		return renderQueryTable(out, engine, result, window)
	}
}

// buildFilterSpec turns filter flags into a FilterSpec. An empty sort key
// selects the configured default and an empty category selects every
// category.
func buildFilterSpec(cfg *config.Config, search, category, sortBy, order string) (query.FilterSpec, error) {
	spec := query.FilterSpec{
		SearchTerm: search,
		Category:   category,
		SortBy:     cfg.Query.SortBy(),
	}
	if spec.Category == "" {
		spec.Category = cfg.Query.AllCategories
	}

	if sortBy != "" {
		key, err := query.ParseSortBy(sortBy)
		if err != nil {
			return query.FilterSpec{}, fmt.Errorf("--sort: %w", err)
		}
		spec.SortBy = key
	}

	dir, err := query.ParseSortOrder(order)
	if err != nil {
		return query.FilterSpec{}, fmt.Errorf("--order: %w", err)
	}
	spec.SortOrder = dir

	return spec, nil
}

// withDefault returns v, or def when v is zero. Negative values pass through
// so that the pagination clamps apply.
func withDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
