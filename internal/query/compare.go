package query

import (
	"cmp"
	"strings"
	"time"

	"golang.org/x/text/collate"

	"github.com/comunidad/feedquery/internal/record"
)

// Popularity weights: a like counts three times, a comment twice, views and
// attendees once.
const (
	likesWeight     = 3
	commentsWeight  = 2
	viewsWeight     = 1
	attendeesWeight = 1
)

// descending reports whether the base (ascending) comparator must be negated
// for the given key and requested order.
func descending(key SortBy, order SortOrder) bool {
	switch order {
	case OrderAsc:
		return false
	case OrderDesc:
		return true
	}
	return key == SortRecent || key == SortPopular
}

// comparator returns an ascending comparator over indexes into items, with
// the sort keys resolved once up front. It returns nil for unknown keys.
func (e *Engine) comparator(key SortBy, items []record.Record) func(a, b int) int {
	switch key {
	case SortRecent, SortOldest:
		return e.dateComparator(items)
	case SortPopular:
		return e.popularityComparator(items)
	case SortTitle:
		return e.titleComparator(items)
	default:
		return nil
	}
}

// dateComparator orders older before newer. A record without a usable date
// ties with everything, which makes the order non-transitive: dated records
// on either side of an undated one keep their input order relative to each
// other.
func (e *Engine) dateComparator(items []record.Record) func(a, b int) int {
	dates := make([]time.Time, len(items))
	known := make([]bool, len(items))
	for i, item := range items {
		dates[i], known[i] = record.Time(item, e.aliases.Date, e.dateLayouts)
	}

	return func(a, b int) int {
		if !known[a] || !known[b] {
			return 0
		}
		return dates[a].Compare(dates[b])
	}
}

func (e *Engine) popularityComparator(items []record.Record) func(a, b int) int {
	scores := make([]float64, len(items))
	for i, item := range items {
		scores[i] = e.Popularity(item)
	}

	return func(a, b int) int {
		return cmp.Compare(scores[a], scores[b])
	}
}

// titleComparator orders titles with the engine's locale collation after
// lowercasing. A missing title sorts as the empty string.
func (e *Engine) titleComparator(items []record.Record) func(a, b int) int {
	titles := make([]string, len(items))
	for i, item := range items {
		s, _ := record.String(item, e.aliases.Title)
		titles[i] = strings.ToLower(s)
	}

	// Collators carry scratch buffers; one per sort keeps Engine shareable.
	collator := collate.New(e.locale, collate.IgnoreCase)

	return func(a, b int) int {
		return collator.CompareString(titles[a], titles[b])
	}
}

// Popularity returns the weighted popularity score of item:
// 3*likes + 2*comments + views + attendees. Missing metrics count as zero.
func (e *Engine) Popularity(item record.Record) float64 {
	return likesWeight*record.Number(item, e.aliases.Likes) +
		commentsWeight*record.Number(item, e.aliases.Comments) +
		viewsWeight*record.Number(item, e.aliases.Views) +
		attendeesWeight*record.Number(item, e.aliases.Attendees)
}

// Title resolves the display title of item through the title aliases.
func (e *Engine) Title(item record.Record) string {
	s, _ := record.String(item, e.aliases.Title)
	return s
}

// Category resolves the category of item through the category aliases.
func (e *Engine) Category(item record.Record) string {
	s, _ := record.String(item, e.aliases.Category)
	return s
}

// Date resolves the date of item through the date aliases and the engine's
// layouts.
func (e *Engine) Date(item record.Record) (time.Time, bool) {
	return record.Time(item, e.aliases.Date, e.dateLayouts)
}
