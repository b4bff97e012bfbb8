package query

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/record"
)

// PageResult is one page of a filtered and sorted collection.
type PageResult struct {
	Items []record.Record `json:"items"       yaml:"items"`

	// Total is the number of records that passed the filters, before
	// pagination.
	Total      int `json:"total"       yaml:"total"`
	Page       int `json:"page"        yaml:"page"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// Empty reports whether the page holds no records.
func (r PageResult) Empty() bool {
	return len(r.Items) == 0
}

// Engine runs list queries. It is immutable once built and safe for
// concurrent use.
type Engine struct {
	aliases       record.Aliases
	locale        language.Tag
	allCategories string
	dateLayouts   []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithAliases overrides the alias table. Concepts left empty keep their
// defaults.
func WithAliases(aliases record.Aliases) Option {
	return func(e *Engine) {
		e.aliases = e.aliases.Merge(aliases)
	}
}

// WithLocale sets the collation locale used by the title sort.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

// WithAllCategories sets the category value that disables category filtering.
func WithAllCategories(sentinel string) Option {
	return func(e *Engine) {
		if sentinel != "" {
			e.allCategories = sentinel
		}
	}
}

// WithDateLayouts sets the layouts tried when a date field holds a string.
func WithDateLayouts(layouts []string) Option {
	return func(e *Engine) {
		if len(layouts) > 0 {
			e.dateLayouts = slices.Clone(layouts)
		}
	}
}

// New creates an Engine with the default alias table, Spanish collation and
// the "todas" category sentinel.
func New(opts ...Option) *Engine {
	e := &Engine{
		aliases:       record.DefaultAliases(),
		locale:        language.Spanish,
		allCategories: AllCategories,
		dateLayouts:   slices.Clone(record.DefaultDateLayouts),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Aliases returns a copy of the engine's alias table.
func (e *Engine) Aliases() record.Aliases {
	return e.aliases.Merge(record.Aliases{})
}

// AllCategories returns the category sentinel.
func (e *Engine) AllCategories() string {
	return e.allCategories
}

// HasActiveFilters reports whether spec differs from the cleared state of
// this engine, honoring its category sentinel.
func (e *Engine) HasActiveFilters(spec FilterSpec) bool {
	return spec.SearchTerm != "" || !isAllCategories(spec.Category, e.allCategories) || spec.Key() != SortRecent
}

//nolint:gochecknoglobals // Immutable engine backing the package-level helpers.
var defaultEngine = New()

// FilterAndSort runs a query with the default engine.
func FilterAndSort(items []record.Record, spec FilterSpec, req pagination.PageRequest) PageResult {
	return defaultEngine.FilterAndSort(items, spec, req)
}

// UniqueCategories collects categories with the default engine.
func UniqueCategories(items []record.Record) []string {
	return defaultEngine.UniqueCategories(items)
}

// FilterAndSort filters items by search term and category, sorts the
// survivors and returns the requested page. The page request is clamped with
// PageRequest.Normalize. A page past the end yields no items.
func (e *Engine) FilterAndSort(items []record.Record, spec FilterSpec, req pagination.PageRequest) PageResult {
	req = req.Normalize()

	filtered := e.Sort(e.Filter(items, spec), spec)

	total := len(filtered)
	start, end := req.Bounds(total)
	page := make([]record.Record, end-start)
	copy(page, filtered[start:end])

	return PageResult{
		Items:      page,
		Total:      total,
		Page:       req.Page,
		TotalPages: req.TotalPages(total),
	}
}

// Filter returns a new slice with the records matching the search term and
// category of spec, in input order.
func (e *Engine) Filter(items []record.Record, spec FilterSpec) []record.Record {
	term := strings.ToLower(spec.SearchTerm)
	byCategory := !isAllCategories(spec.Category, e.allCategories)

	out := make([]record.Record, 0, len(items))
	for _, item := range items {
		if term != "" && !e.matchesSearchTerm(item, term) {
			continue
		}
		if byCategory && !e.matchesCategory(item, spec.Category) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Sort returns a new slice ordered by spec. Ties keep their input order.
func (e *Engine) Sort(items []record.Record, spec FilterSpec) []record.Record {
	sorted := slices.Clone(items)
	key := spec.Key()
	if key == SortNone || len(sorted) < 2 {
		return sorted
	}

	cmp := e.comparator(key, sorted)
	if cmp == nil {
		return sorted
	}
	if descending(key, spec.SortOrder) {
		asc := cmp
		cmp = func(a, b int) int { return -asc(a, b) }
	}

	idx := make([]int, len(sorted))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, cmp)

	out := make([]record.Record, len(sorted))
	for i, j := range idx {
		out[i] = sorted[j]
	}
	return out
}

// UniqueCategories returns the distinct category values present in items,
// case preserved and sorted. Records without a category contribute nothing.
func (e *Engine) UniqueCategories(items []record.Record) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, item := range items {
		c, ok := record.String(item, e.aliases.Category)
		if !ok || c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

func (e *Engine) matchesSearchTerm(item record.Record, term string) bool {
	for _, field := range e.aliases.Search {
		if s, ok := item[field].(string); ok && strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func (e *Engine) matchesCategory(item record.Record, category string) bool {
	c, ok := record.String(item, e.aliases.Category)
	return ok && strings.EqualFold(c, category)
}
