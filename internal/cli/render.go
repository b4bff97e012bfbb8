package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/tui"
)

// Table layout.
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '

	// maxTitleWidth caps the title column of the table output.
	maxTitleWidth = 60
)

// queryOutput is the JSON document printed by `query --output json`.
type queryOutput struct {
	Result query.PageResult      `json:"result"`
	Window pagination.PageWindow `json:"window"`
}

// pageSummary is the first NDJSON line of `query --output ndjson`.
type pageSummary struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	StartItem  int `json:"start_item"`
	EndItem    int `json:"end_item"`
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
}

// renderQueryTable prints the page as a table followed by the pager line.
func renderQueryTable(w io.Writer, engine *query.Engine, result query.PageResult, window pagination.PageWindow) error {
	if result.Empty() {
		if _, err := fmt.Fprintln(w, "No records match the given filters."); err != nil {
			return err
		}
	} else {
		tw := newTabWriter(w)
		fmt.Fprintln(tw, "TITLE\tCATEGORY\tDATE\tSCORE")
		for _, item := range result.Items {
			row := tui.NewRow(engine, item)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				tui.Truncate(row.Title, maxTitleWidth), row.Category, row.Date, row.Popularity)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", tui.RenderPager(window))
	return err
}

// renderQueryNDJSON prints a summary line followed by one line per record.
func renderQueryNDJSON(w io.Writer, result query.PageResult, window pagination.PageWindow) error {
	enc := json.NewEncoder(w)
	summary := pageSummary{
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}
	if window.HasItems() && !result.Empty() {
		summary.StartItem = window.StartItem
		summary.EndItem = window.EndItem
	}
	if err := enc.Encode(summary); err != nil {
		return err
	}
	for _, item := range result.Items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}

// renderJSON prints v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderWindowTable prints the pager line and the window fields.
func renderWindowTable(w io.Writer, window pagination.PageWindow) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", tui.RenderPager(window)); err != nil {
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Total items:\t%d\n", window.TotalItems)
	fmt.Fprintf(tw, "Items per page:\t%d\n", window.ItemsPerPage)
	fmt.Fprintf(tw, "Current page:\t%d\n", window.CurrentPage)
	fmt.Fprintf(tw, "Total pages:\t%d\n", window.TotalPages)
	fmt.Fprintf(tw, "Visible pages:\t%v\n", window.VisiblePages)
	fmt.Fprintf(tw, "Show first:\t%t\n", window.ShowFirst)
	fmt.Fprintf(tw, "Show last:\t%t\n", window.ShowLast)
	fmt.Fprintf(tw, "First page:\t%t\n", window.IsFirstPage)
	fmt.Fprintf(tw, "Last page:\t%t\n", window.IsLastPage)
	if window.HasItems() {
		fmt.Fprintf(tw, "Range:\t%s\n", tui.RangeSummary(window))
	}
	return tw.Flush()
}
