// Package listview provides the selectable row list used by the feed
// browser. The list holds the records of the current page only; paging is
// the caller's concern. Rendering is windowed around the selection so that a
// page larger than the viewport keeps the selected row visible.
package listview
