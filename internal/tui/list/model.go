package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders an item at a given index. The selected parameter
// indicates whether this item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a selectable list of page rows.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected    int
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// New creates a list over items with the given viewport size.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles selection keys and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.SetSelected(m.selected - 1)
		case "down", "j":
			m.SetSelected(m.selected + 1)
		case "pgup":
			m.SetSelected(m.selected - m.height)
		case "pgdown":
			m.SetSelected(m.selected + m.height)
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

// SetItems replaces the rows, as after a page change, and selects the first
// row.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize changes the viewport.
func (m *Model[T]) SetSize(height, width int) {
	m.height = max(height, 1)
	m.width = width
	m.updateVisibleRange()
}

// updateVisibleRange keeps the selected row inside the viewport, centered
// when possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.selected - m.height/halfViewportDivisor
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom, m.visibleTo = from, to
}

// View renders the rows inside the viewport.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// ItemCount returns the number of rows.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected row index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SetSelected selects index, capped to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// VisibleFrom returns the first visible row index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible row index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// SelectedItem returns the selected row, or nil if the list is empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
