package query

import (
	"fmt"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Parse errors for sort parameters coming from user input.
var (
	ErrInvalidSortBy    = constError("invalid sort key")
	ErrInvalidSortOrder = constError("invalid sort order")
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "todas"

// SortBy selects the ordering of a result.
type SortBy string

// Sort keys. The zero value behaves as SortRecent.
const (
	SortRecent  SortBy = "recent"
	SortOldest  SortBy = "oldest"
	SortPopular SortBy = "popular"
	SortTitle   SortBy = "title"
	SortNone    SortBy = "none"
)

// SortKeys lists the selectable sort keys in the order a sort selector cycles
// through them.
func SortKeys() []SortBy {
	return []SortBy{SortRecent, SortPopular, SortOldest, SortTitle}
}

// SortOrder is the requested direction. The zero value selects the natural
// direction of the sort key: newest first for recent, oldest first for
// oldest, most popular first for popular, A to Z for title.
type SortOrder string

// Sort directions.
const (
	OrderNatural SortOrder = ""
	OrderAsc     SortOrder = "asc"
	OrderDesc    SortOrder = "desc"
)

// FilterSpec holds the search, category and sort criteria for one query.
type FilterSpec struct {
	SearchTerm string    `json:"search_term,omitempty" yaml:"search_term,omitempty"`
	Category   string    `json:"category,omitempty"    yaml:"category,omitempty"`
	SortBy     SortBy    `json:"sort_by,omitempty"     yaml:"sort_by,omitempty"`
	SortOrder  SortOrder `json:"sort_order,omitempty"  yaml:"sort_order,omitempty"`
}

// DefaultFilterSpec returns the criteria of a freshly opened or cleared
// filter bar: no search, all categories, most recent first.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{Category: AllCategories, SortBy: SortRecent}
}

// HasActiveFilters reports whether f differs from the cleared state, assuming
// the default category sentinel. Use Engine.HasActiveFilters for a custom one.
func (f FilterSpec) HasActiveFilters() bool {
	return f.SearchTerm != "" || !isAllCategories(f.Category, AllCategories) || f.Key() != SortRecent
}

// Key returns the sort key, with the zero value resolved to SortRecent.
func (f FilterSpec) Key() SortBy {
	if f.SortBy == "" {
		return SortRecent
	}
	return f.SortBy
}

// EffectiveOrder returns the direction the engine applies: the explicit
// SortOrder, or the natural direction of the key when unset.
func (f FilterSpec) EffectiveOrder() SortOrder {
	if descending(f.Key(), f.SortOrder) {
		return OrderDesc
	}
	return OrderAsc
}

// ParseSortBy parses a sort key. The empty string yields SortRecent.
func ParseSortBy(s string) (SortBy, error) {
	switch key := SortBy(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return SortRecent, nil
	case SortRecent, SortOldest, SortPopular, SortTitle, SortNone:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q (must be recent, oldest, popular, title or none)", ErrInvalidSortBy, s)
	}
}

// ParseSortOrder parses a sort direction. The empty string yields
// OrderNatural.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case OrderNatural, OrderAsc, OrderDesc:
		return order, nil
	default:
		return "", fmt.Errorf("%w: %q (must be asc or desc)", ErrInvalidSortOrder, s)
	}
}

func isAllCategories(category, sentinel string) bool {
	return category == "" || strings.EqualFold(category, sentinel)
}
