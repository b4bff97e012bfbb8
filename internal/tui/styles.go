package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the browser and the CLI pager line.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("212")
	ColorError     = lipgloss.Color("196")
	ColorSelectFg  = lipgloss.Color("229")
	ColorSelectBg  = lipgloss.Color("57")
)

//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	HeaderStyle      = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle       = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle       = lipgloss.NewStyle().Foreground(ColorValue)
	MutedStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
	CurrentPageStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	SelectedStyle    = lipgloss.NewStyle().Foreground(ColorSelectFg).Background(ColorSelectBg)
)
