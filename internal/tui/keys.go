package tui

// Key bindings of the feed browser.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyCategory = "c"
	keySort     = "s"
	keyOrder    = "o"
	keyClear    = "x"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyHome     = "home"
	keyEnd      = "end"
)
