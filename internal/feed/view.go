// Package feed holds the caller-side state of one list screen (blog, events,
// ventures): the loaded collection, the active filters and the current page.
// Every change recomputes the visible page through the query engine and the
// pager window through pagination.
package feed

import (
	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/record"
)

// View is the state of a list screen. It is not safe for concurrent use.
type View struct {
	engine     *query.Engine
	records    []record.Record
	categories []string
	filters    query.FilterSpec
	nav        *pagination.Navigator

	itemsPerPage    int
	maxVisiblePages int
	result          query.PageResult
}

// Options configures a View.
type Options struct {
	ItemsPerPage    int
	MaxVisiblePages int
	Filters         query.FilterSpec
}

// NewView creates an empty view. A nil engine selects the default engine and
// zero options select the pagination defaults.
func NewView(engine *query.Engine, opts Options) *View {
	if engine == nil {
		engine = query.New()
	}
	if opts.ItemsPerPage <= 0 {
		opts.ItemsPerPage = pagination.DefaultItemsPerPage
	}
	if opts.MaxVisiblePages <= 0 {
		opts.MaxVisiblePages = pagination.DefaultMaxVisiblePages
	}
	if opts.Filters == (query.FilterSpec{}) {
		opts.Filters = query.DefaultFilterSpec()
		opts.Filters.Category = engine.AllCategories()
	}

	v := &View{
		engine:          engine,
		filters:         opts.Filters,
		itemsPerPage:    opts.ItemsPerPage,
		maxVisiblePages: opts.MaxVisiblePages,
		nav:             pagination.NewNavigator(0, opts.ItemsPerPage, opts.MaxVisiblePages),
	}
	v.refresh()
	return v
}

// SetRecords replaces the collection, rebuilds the category vocabulary and
// recomputes the current page. The current page is kept, as after a
// background re-fetch.
func (v *View) SetRecords(records []record.Record) {
	v.records = records
	v.categories = v.engine.UniqueCategories(records)
	v.refresh()
}

// SetFilters applies new criteria and returns to page 1.
func (v *View) SetFilters(filters query.FilterSpec) {
	v.filters = filters
	v.nav.Reset()
	v.refresh()
}

// ClearFilters restores the default criteria and returns to page 1.
func (v *View) ClearFilters() {
	f := query.DefaultFilterSpec()
	f.Category = v.engine.AllCategories()
	v.SetFilters(f)
}

// SetPage moves to page if it is a valid, different page. It reports whether
// the page changed.
func (v *View) SetPage(page int) bool {
	if _, moved := v.nav.GoToPage(page); !moved {
		return false
	}
	v.refresh()
	return true
}

// Navigate applies one of the navigator's moves and refreshes on success.
func (v *View) Navigate(move func(*pagination.Navigator) (int, bool)) bool {
	if _, moved := move(v.nav); !moved {
		return false
	}
	v.refresh()
	return true
}

// Engine returns the query engine backing the view.
func (v *View) Engine() *query.Engine { return v.engine }

// HasActiveFilters reports whether the criteria differ from the cleared state.
func (v *View) HasActiveFilters() bool { return v.engine.HasActiveFilters(v.filters) }

// Filters returns the active criteria.
func (v *View) Filters() query.FilterSpec { return v.filters }

// Categories returns the category vocabulary of the whole collection.
func (v *View) Categories() []string { return v.categories }

// Records returns the loaded collection.
func (v *View) Records() []record.Record { return v.records }

// Result returns the current page.
func (v *View) Result() query.PageResult { return v.result }

// Window returns the pager window for the current page.
func (v *View) Window() pagination.PageWindow { return v.nav.Window() }

// Page returns the current page number.
func (v *View) Page() int { return v.nav.Current() }

func (v *View) refresh() {
	v.result = v.engine.FilterAndSort(v.records, v.filters, pagination.PageRequest{
		Page:         v.nav.Current(),
		ItemsPerPage: v.itemsPerPage,
	})
	v.nav.SetTotalItems(v.result.Total)
}
