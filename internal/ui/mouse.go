package ui

import (
	"github.com/atomicstack/popup-menu-button/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg hit-tests mouse events against the rendered rows.
// Motion over an item makes it active; a left click on the trigger
// toggles the menu, on an item commits it, and anywhere else steals
// focus from a visible menu.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		if !m.menu.Visible() {
			return nil
		}
		if idx, ok := m.itemAt(ev.Y); ok {
			m.menu.ActivateItem(idx)
			events.Menu.Hover(idx)
		}
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		if ev.Y == m.buttonRow {
			m.button.ToggleMenu()
			events.Button.Toggle(m.menu.Visible())
			return nil
		}
		if idx, ok := m.itemAt(ev.Y); ok {
			m.menu.HandleClick(idx)
			m.noteSelection()
			return nil
		}
		if m.menu.Visible() {
			m.menu.HandleBlur()
			events.Menu.Blur()
		}
	}
	return nil
}

// itemAt maps a terminal row to a tracked item index while the menu is
// visible.
func (m *Model) itemAt(row int) (int, bool) {
	if !m.menu.Visible() {
		return 0, false
	}
	idx := row - m.itemRowOffset
	if idx < 0 || idx >= m.menu.Len() {
		return 0, false
	}
	return idx, true
}
