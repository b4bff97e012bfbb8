package pagination

// Navigator tracks the current page of a pager control and guards every move
// against the page bounds. It is not safe for concurrent use.
type Navigator struct {
	current         int
	totalItems      int
	itemsPerPage    int
	maxVisiblePages int

	// OnPageChange, when set, is called after every accepted page change.
	OnPageChange func(page int)
}

// NewNavigator creates a Navigator positioned on page 1.
func NewNavigator(totalItems, itemsPerPage, maxVisiblePages int) *Navigator {
	return &Navigator{
		current:         DefaultPage,
		totalItems:      max(totalItems, 0),
		itemsPerPage:    max(itemsPerPage, MinItemsPerPage),
		maxVisiblePages: max(maxVisiblePages, MinMaxVisiblePages),
	}
}

// Current returns the current page.
func (n *Navigator) Current() int {
	return n.current
}

// TotalPages returns the number of pages for the current total.
func (n *Navigator) TotalPages() int {
	return TotalPages(n.totalItems, n.itemsPerPage)
}

// SetTotalItems updates the item count, typically after a new query. The
// current page is kept even if it now lies past the end.
func (n *Navigator) SetTotalItems(total int) {
	n.totalItems = max(total, 0)
}

// Reset moves back to page 1 without the bounds guard and without firing
// OnPageChange. Used when filters change.
func (n *Navigator) Reset() {
	n.current = DefaultPage
}

// Window returns the pager window for the current state.
func (n *Navigator) Window() PageWindow {
	return Calculate(n.totalItems, n.itemsPerPage, n.current, n.maxVisiblePages)
}

// GoToPage moves to page and reports whether the move happened. It is a
// no-op unless 1 <= page <= TotalPages and page differs from the current one.
func (n *Navigator) GoToPage(page int) (int, bool) {
	if page < 1 || page > n.TotalPages() || page == n.current {
		return n.current, false
	}
	n.current = page
	if n.OnPageChange != nil {
		n.OnPageChange(page)
	}
	return n.current, true
}

// First moves to page 1.
func (n *Navigator) First() (int, bool) {
	return n.GoToPage(1)
}

// Last moves to the last page.
func (n *Navigator) Last() (int, bool) {
	return n.GoToPage(n.TotalPages())
}

// Previous moves one page back.
func (n *Navigator) Previous() (int, bool) {
	return n.GoToPage(n.current - 1)
}

// Next moves one page forward.
func (n *Navigator) Next() (int, bool) {
	return n.GoToPage(n.current + 1)
}
