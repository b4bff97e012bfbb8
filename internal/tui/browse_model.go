package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunidad/feedquery/internal/feed"
	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/record"
	listview "github.com/comunidad/feedquery/internal/tui/list"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	minHeight     = 3

	// browseChromeHeight is the number of rows used by the title, filter
	// bar, column header, pager and help lines.
	browseChromeHeight = 7

	searchInputCharLimit = 120
	searchInputWidth     = 40
)

// BrowseModel is the Bubble Tea model of the interactive feed browser. It
// drives a feed.View: every key that changes filters or page goes through
// the view, and the list shows the rows of the resulting page.
type BrowseModel struct {
	view  *feed.View
	title string

	list   *listview.Model[Row]
	search textinput.Model

	searching bool
	quitting  bool

	width  int
	height int
}

// NewBrowseModel creates a browser over view. title labels the collection.
func NewBrowseModel(view *feed.View, title string) *BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Search title, name, description..."
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth

	m := &BrowseModel{
		view:   view,
		title:  title,
		search: ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.list = listview.New(m.rows(), m.listHeight(), m.width, RenderRow)
	return m
}

// Init initializes the model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Feed exposes the underlying feed view.
func (m *BrowseModel) Feed() *feed.View {
	return m.view
}

// Searching reports whether the search input has focus.
func (m *BrowseModel) Searching() bool {
	return m.searching
}

// Quitting reports whether the user asked to quit.
func (m *BrowseModel) Quitting() bool {
	return m.quitting
}

// SelectedRecord returns the record under the cursor, or nil on an empty page.
func (m *BrowseModel) SelectedRecord() record.Record {
	items := m.view.Result().Items
	if len(items) == 0 {
		return nil
	}
	return items[m.list.Selected()]
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.list.SetSize(m.listHeight(), m.width)
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case keySlash:
		m.searching = true
		m.search.SetValue(m.view.Filters().SearchTerm)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case keyCategory:
		m.cycleCategory()
	case keySort:
		m.cycleSort()
	case keyOrder:
		m.toggleOrder()
	case keyClear:
		m.view.ClearFilters()
		m.syncList()
	case keyLeft, keyH:
		m.navigate((*pagination.Navigator).Previous)
	case keyRight, keyL:
		m.navigate((*pagination.Navigator).Next)
	case keyHome:
		m.navigate((*pagination.Navigator).First)
	case keyEnd:
		m.navigate((*pagination.Navigator).Last)
	default:
		_, cmd := m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.searching = false
			m.search.Blur()
			filters := m.view.Filters()
			filters.SearchTerm = strings.TrimSpace(m.search.Value())
			m.view.SetFilters(filters)
			m.syncList()
			return m, nil
		case keyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue(m.view.Filters().SearchTerm)
			return m, nil
		case keyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// cycleCategory steps through the sentinel and the collection's categories.
func (m *BrowseModel) cycleCategory() {
	options := append([]string{m.view.Engine().AllCategories()}, m.view.Categories()...)
	filters := m.view.Filters()

	current := categoryIndex(options, filters.Category)
	filters.Category = options[(current+1)%len(options)]
	m.view.SetFilters(filters)
	m.syncList()
}

// categoryIndex locates category in options, whose first entry is the
// all-categories sentinel. Case variants such as "Tech" and "tech" are distinct
// options, so an exact match wins over a case-insensitive one.
func categoryIndex(options []string, category string) int {
	if category == "" {
		return 0
	}
	if i := slices.Index(options, category); i >= 0 {
		return i
	}
	return slices.IndexFunc(options, func(c string) bool { return strings.EqualFold(c, category) })
}

// cycleSort steps through the sort keys and returns to the natural order.
func (m *BrowseModel) cycleSort() {
	keys := query.SortKeys()
	filters := m.view.Filters()

	next := 0
	for i, k := range keys {
		if k == filters.Key() {
			next = (i + 1) % len(keys)
			break
		}
	}

	filters.SortBy = keys[next]
	filters.SortOrder = query.OrderNatural
	m.view.SetFilters(filters)
	m.syncList()
}

// toggleOrder flips the effective direction of the current sort key.
func (m *BrowseModel) toggleOrder() {
	filters := m.view.Filters()
	if filters.EffectiveOrder() == query.OrderDesc {
		filters.SortOrder = query.OrderAsc
	} else {
		filters.SortOrder = query.OrderDesc
	}
	m.view.SetFilters(filters)
	m.syncList()
}

func (m *BrowseModel) navigate(move func(*pagination.Navigator) (int, bool)) {
	if m.view.Navigate(move) {
		m.syncList()
	}
}

func (m *BrowseModel) syncList() {
	m.list.SetItems(m.rows())
}

func (m *BrowseModel) rows() []Row {
	engine := m.view.Engine()
	items := m.view.Result().Items
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = NewRow(engine, item)
	}
	return rows
}

func (m *BrowseModel) listHeight() int {
	return max(m.height-browseChromeHeight, minHeight)
}

// View renders the browser.
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if m.list.ItemCount() == 0 {
		b.WriteString(MutedStyle.Render("No records match the current filters."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderRowHeader())
		b.WriteString("\n")
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderPager(m.view.Window()))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(
		"/ search  c category  s sort  o order  ←/→ page  home/end  x clear  q quit"))

	return b.String()
}

func (m *BrowseModel) renderFilterBar() string {
	filters := m.view.Filters()

	search := filters.SearchTerm
	if m.searching {
		search = m.search.View()
	} else if search == "" {
		search = MutedStyle.Render("-")
	}

	category := filters.Category
	if category == "" {
		category = m.view.Engine().AllCategories()
	}

	bar := fmt.Sprintf("%s %s  %s %s  %s %s %s",
		LabelStyle.Render("Search:"), search,
		LabelStyle.Render("Category:"), ValueStyle.Render(category),
		LabelStyle.Render("Sort:"), ValueStyle.Render(string(filters.Key())),
		ValueStyle.Render(string(filters.EffectiveOrder())),
	)
	if m.view.HasActiveFilters() {
		bar += "  " + MutedStyle.Render("(x to clear)")
	}
	return bar
}
