package pagination

import (
	"errors"
	"fmt"
	"math"
)

// Page request defaults and limits.
const (
	DefaultPage            = 1
	MinPage                = 1
	DefaultItemsPerPage    = 10
	MinItemsPerPage        = 1
	DefaultMaxVisiblePages = 5
	MinMaxVisiblePages     = 1
)

// Validation errors returned by PageRequest.Validate.
var (
	ErrInvalidPage         = errors.New("page must be >= 1")
	ErrInvalidItemsPerPage = errors.New("items-per-page must be >= 1")
)

// PageRequest is the caller-owned page selection for one query.
type PageRequest struct {
	// Page is the 1-based page number.
	Page int `json:"page" yaml:"page"`

	// ItemsPerPage is the page size.
	ItemsPerPage int `json:"items_per_page" yaml:"items_per_page"`
}

// NewPageRequest creates a PageRequest with default values.
func NewPageRequest() PageRequest {
	return PageRequest{Page: DefaultPage, ItemsPerPage: DefaultItemsPerPage}
}

// Normalize clamps the request instead of rejecting it:
// a page below 1 becomes 1, an unset (zero) page size becomes
// DefaultItemsPerPage and a negative page size becomes 1.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < MinPage {
		p.Page = MinPage
	}
	switch {
	case p.ItemsPerPage == 0:
		p.ItemsPerPage = DefaultItemsPerPage
	case p.ItemsPerPage < MinItemsPerPage:
		p.ItemsPerPage = MinItemsPerPage
	}
	return p
}

// Validate reports the first invalid field, for callers that prefer to reject
// bad input rather than clamp it.
func (p PageRequest) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.ItemsPerPage < MinItemsPerPage {
		return fmt.Errorf("%w: got %d", ErrInvalidItemsPerPage, p.ItemsPerPage)
	}
	return nil
}

// Offset returns the index of the first item on the requested page.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return saturatingMul(n.Page-1, n.ItemsPerPage)
}

// TotalPages returns ceil(total / ItemsPerPage), or 0 when total is 0.
func (p PageRequest) TotalPages(total int) int {
	return TotalPages(total, p.Normalize().ItemsPerPage)
}

// Bounds returns the half-open [start, end) slice bounds of the requested
// page within a collection of length total. Out-of-range pages yield an
// empty range at the end of the collection.
//
//nolint:nonamedreturns // Named returns document the pair.
func (p PageRequest) Bounds(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	n := p.Normalize()
	if n.Page > TotalPages(total, n.ItemsPerPage) {
		return total, total
	}
	start = (n.Page - 1) * n.ItemsPerPage
	end = start + min(n.ItemsPerPage, total-start)
	return start, end
}

// saturatingMul multiplies two non-negative ints, returning math.MaxInt
// instead of wrapping.
func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// TotalPages returns the number of pages needed to hold totalItems items at
// itemsPerPage per page. Non-positive inputs yield 0.
func TotalPages(totalItems, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage <= 0 {
		return 0
	}
	pages := totalItems / itemsPerPage
	if totalItems%itemsPerPage > 0 {
		pages++
	}
	return pages
}
