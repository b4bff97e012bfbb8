// Package query is the list query engine: it reduces a raw collection of
// heterogeneous records to one page of filtered, sorted results and exposes
// the category vocabulary of a collection.
//
// The engine is pure. It copies its input before sorting, keeps no state
// between calls, and never fails on malformed records: a missing field is a
// non-match for filters, a zero for popularity, and a tie for ordering.
package query
