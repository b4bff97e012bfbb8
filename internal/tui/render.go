package tui

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/record"
)

// Column widths of a record row.
const (
	colWidthTitle      = 40
	colWidthCategory   = 16
	colWidthDate       = 10
	colWidthPopularity = 8

	ellipsis = "…"
	dateOnly = "2006-01-02"
)

//nolint:gochecknoglobals // Printer is safe for reuse; it only formats numbers.
var printer = message.NewPrinter(language.English)

// Row is the display form of one record.
type Row struct {
	Title      string
	Category   string
	Date       string
	Popularity string
}

// NewRow resolves the displayed fields of item through engine's aliases.
func NewRow(engine *query.Engine, item record.Record) Row {
	row := Row{
		Title:      engine.Title(item),
		Category:   engine.Category(item),
		Popularity: FormatScore(engine.Popularity(item)),
	}
	if date, ok := engine.Date(item); ok {
		row.Date = date.Format(dateOnly)
	}
	return row
}

// FormatScore formats a popularity score with thousands separators, dropping
// the fraction when it is zero.
func FormatScore(score float64) string {
	if score == float64(int64(score)) {
		return printer.Sprintf("%d", int64(score))
	}
	return printer.Sprintf("%.1f", score)
}

// Truncate shortens s to width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + ellipsis
}

// RenderRowHeader renders the column header of the record list.
func RenderRowHeader() string {
	return HeaderStyle.Render(formatRow(Row{
		Title:      "Title",
		Category:   "Category",
		Date:       "Date",
		Popularity: "Score",
	}))
}

// RenderRow renders one record row for the list.
func RenderRow(row Row, selected bool) string {
	line := formatRow(row)
	if selected {
		return SelectedStyle.Render(line)
	}
	return line
}

func formatRow(row Row) string {
	return fmt.Sprintf("%-*s  %-*s  %-*s  %*s",
		colWidthTitle, Truncate(row.Title, colWidthTitle),
		colWidthCategory, Truncate(row.Category, colWidthCategory),
		colWidthDate, row.Date,
		colWidthPopularity, row.Popularity,
	)
}

// RenderPager renders the pager line for w: the page buttons with the
// current page in brackets, edge jumps with ellipses, and the item range.
func RenderPager(w pagination.PageWindow) string {
	if !w.HasItems() {
		return MutedStyle.Render("No results")
	}

	parts := make([]string, 0, len(w.VisiblePages)+4)
	if w.ShowFirst {
		parts = append(parts, "1")
		if w.VisiblePages[0] > 2 {
			parts = append(parts, MutedStyle.Render(ellipsis))
		}
	}
	for _, p := range w.VisiblePages {
		if p == w.CurrentPage {
			parts = append(parts, CurrentPageStyle.Render("["+strconv.Itoa(p)+"]"))
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	if w.ShowLast {
		if w.VisiblePages[len(w.VisiblePages)-1] < w.TotalPages-1 {
			parts = append(parts, MutedStyle.Render(ellipsis))
		}
		parts = append(parts, strconv.Itoa(w.TotalPages))
	}

	return strings.Join(parts, " ") + "  " + LabelStyle.Render(RangeSummary(w))
}

// RangeSummary describes which items the current page shows.
func RangeSummary(w pagination.PageWindow) string {
	switch {
	case !w.HasItems():
		return "No results"
	case w.StartItem > w.TotalItems:
		return printer.Sprintf("Page %d of %d is empty", w.CurrentPage, w.TotalPages)
	default:
		return printer.Sprintf("Showing %d-%d of %d", w.StartItem, w.EndItem, w.TotalItems)
	}
}
