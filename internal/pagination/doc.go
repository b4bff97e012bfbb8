// Package pagination provides page requests, pager windows, and guarded page
// navigation shared by every list view (blog, events, ventures, members).
//
// This package contains:
//   - PageRequest: page/items-per-page parameters with clamping and validation
//   - PageWindow: the bounded run of page numbers shown by a pager control
//   - Navigator: first/previous/next/last navigation guarded by page bounds
//
// Everything here is a pure calculation. Nothing holds state between calls
// except Navigator, which is owned by a single UI loop.
package pagination
