package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/feed"
	"github.com/comunidad/feedquery/internal/tui"
)

// browseParams holds the flags of the browse command.
type browseParams struct {
	inputs   []string
	search   string
	category string
	sortBy   string
	order    string
	perPage  int
	maxPages int
}

// NewBrowseCmd creates the browse command, which opens the interactive feed
// browser.
func NewBrowseCmd() *cobra.Command {
	var params browseParams

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a collection interactively",
		Long: `Opens an interactive list over the collections with the same search,
category, sort and pagination behavior as the query command.

Keys:
  /            edit the search term (enter applies, esc cancels)
  c            cycle categories
  s            cycle sort keys
  o            toggle ascending/descending
  ←/→, h/l     previous/next page
  home/end     first/last page
  ↑/↓, j/k     move the selection
  x            clear filters
  q, ctrl+c    quit`,
		Example: `  feedquery browse -i posts.json
  feedquery browse -i events.json --category Talleres --sort oldest`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBrowse(cmd, params)
		},
	}

	addInputFlag(cmd, &params.inputs)
	cmd.Flags().StringVar(&params.search, "search", "", "initial search term")
	cmd.Flags().StringVar(&params.category, "category", "", "initial category (default: all)")
	cmd.Flags().StringVar(&params.sortBy, "sort", "", "initial sort key (default from config)")
	cmd.Flags().StringVar(&params.order, "order", "", "initial sort direction: asc or desc")
	cmd.Flags().IntVar(&params.perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&params.maxPages, "max-pages", 0, "pager width in page buttons (default from config)")

	return cmd
}

func executeBrowse(cmd *cobra.Command, params browseParams) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	model, err := newBrowseModel(cmd, params)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// newBrowseModel loads the collections and builds the browser model.
func newBrowseModel(cmd *cobra.Command, params browseParams) (*tui.BrowseModel, error) {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	spec, err := buildFilterSpec(cfg, params.search, params.category, params.sortBy, params.order)
	if err != nil {
		return nil, err
	}

	engine, err := cfg.Query.Engine()
	if err != nil {
		return nil, err
	}

	records, err := loadInputs(ctx, params.inputs)
	if err != nil {
		return nil, err
	}

	view := feed.NewView(engine, feed.Options{
		ItemsPerPage:    withDefault(params.perPage, cfg.Pagination.ItemsPerPage),
		MaxVisiblePages: withDefault(params.maxPages, cfg.Pagination.MaxVisiblePages),
		Filters:         spec,
	})
	view.SetRecords(records)

	logger.Debug().Ctx(ctx).
		Str("operation", "browse").
		Int("records", len(records)).
		Int("categories", len(view.Categories())).
		Msg("opening browser")

	return tui.NewBrowseModel(view, browseTitle(params.inputs)), nil
}

// browseTitle names the browsed collections after their file names.
func browseTitle(inputs []string) string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		if in == "-" {
			names[i] = "stdin"
			continue
		}
		names[i] = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}
	return strings.Join(names, " + ")
}
