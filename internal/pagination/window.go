package pagination

import "math"

// PageWindow contains the pager state for one render: the contiguous run of
// page buttons and the edge and item-range indicators.
type PageWindow struct {
	TotalItems   int   `json:"total_items"    yaml:"total_items"`
	ItemsPerPage int   `json:"items_per_page" yaml:"items_per_page"`
	CurrentPage  int   `json:"current_page"   yaml:"current_page"`
	TotalPages   int   `json:"total_pages"    yaml:"total_pages"`
	VisiblePages []int `json:"visible_pages"  yaml:"visible_pages"`

	// ShowFirst is set when the window does not start at page 1, so the
	// pager shows a jump-to-first control or a leading ellipsis.
	ShowFirst bool `json:"show_first" yaml:"show_first"`

	// ShowLast is set when the window ends before the last page.
	ShowLast bool `json:"show_last" yaml:"show_last"`

	IsFirstPage bool `json:"is_first_page" yaml:"is_first_page"`
	IsLastPage  bool `json:"is_last_page"  yaml:"is_last_page"`

	// StartItem and EndItem are the 1-based item numbers shown on the current
	// page ("showing 21-30 of 47"). Only meaningful when HasItems is true.
	StartItem int `json:"start_item" yaml:"start_item"`
	EndItem   int `json:"end_item"   yaml:"end_item"`
}

// HasItems reports whether there is anything to show. Callers must check it
// before rendering StartItem and EndItem.
func (w PageWindow) HasItems() bool {
	return w.TotalItems > 0
}

// Calculate computes the pager window.
//
// The window is at most maxVisiblePages wide, centered on currentPage and
// shifted to stay full-width near either edge. currentPage is not clamped to
// TotalPages; a page past the end produces a window anchored at the last
// pages. Non-positive itemsPerPage, currentPage and maxVisiblePages are
// floored at 1, and a negative totalItems is treated as 0.
func Calculate(totalItems, itemsPerPage, currentPage, maxVisiblePages int) PageWindow {
	totalItems = max(totalItems, 0)
	itemsPerPage = max(itemsPerPage, MinItemsPerPage)
	currentPage = max(currentPage, MinPage)
	maxVisiblePages = max(maxVisiblePages, MinMaxVisiblePages)

	totalPages := TotalPages(totalItems, itemsPerPage)
	visible := visiblePages(totalPages, currentPage, maxVisiblePages)

	w := PageWindow{
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		VisiblePages: visible,
		IsFirstPage:  currentPage == 1,
		IsLastPage:   currentPage == totalPages,
		StartItem:    startItem(currentPage, itemsPerPage),
		EndItem:      min(saturatingMul(currentPage, itemsPerPage), totalItems),
	}

	if len(visible) > 0 {
		w.ShowFirst = visible[0] > 1
		w.ShowLast = visible[len(visible)-1] < totalPages
	}

	return w
}

// startItem is the 1-based index of the first item on page, saturating at
// math.MaxInt for pages far past the end.
func startItem(page, itemsPerPage int) int {
	offset := saturatingMul(page-1, itemsPerPage)
	if offset == math.MaxInt {
		return offset
	}
	return offset + 1
}

func visiblePages(totalPages, currentPage, maxVisiblePages int) []int {
	half := maxVisiblePages / 2

	start := max(1, currentPage-half)
	end := totalPages
	if start <= totalPages-maxVisiblePages+1 {
		end = start + maxVisiblePages - 1
	}

	// Near the trailing edge, pull the start back to keep the window full.
	if end-start < maxVisiblePages-1 {
		start = max(1, end-maxVisiblePages+1)
	}

	pages := make([]int, 0, max(end-start+1, 0))
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
