// Package tui implements the interactive feed browser and the shared row and
// pager rendering used by the CLI.
package tui
