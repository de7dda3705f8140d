package ui

import (
	"github.com/atomicstack/popup-menu-button/internal/logging/events"
	"github.com/atomicstack/popup-menu-button/internal/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings the host surface understands. Letter
// keys are deliberately unbound so they stay available for typeahead
// while the menu is open.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Space key.Binding
	Close key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Enter: key.NewBinding(key.WithKeys("enter")),
		Space: key.NewBinding(key.WithKeys(" ")),
		Close: key.NewBinding(key.WithKeys("esc")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (m *Model) translateKey(msg tea.KeyMsg) widget.Key {
	switch {
	case key.Matches(msg, m.keys.Up):
		return widget.KeyUp
	case key.Matches(msg, m.keys.Down):
		return widget.KeyDown
	case key.Matches(msg, m.keys.Left):
		return widget.KeyLeft
	case key.Matches(msg, m.keys.Right):
		return widget.KeyRight
	case key.Matches(msg, m.keys.Enter):
		return widget.KeyEnter
	case key.Matches(msg, m.keys.Space):
		return widget.KeySpace
	case key.Matches(msg, m.keys.Close):
		return widget.KeyEscape
	}
	return widget.KeyNone
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}

	k := m.translateKey(keyMsg)

	if m.focus == focusMenu && m.menu.Visible() {
		if m.menu.HandleKey(k) {
			events.Menu.Key(keyMsg.String(), m.menu.ActiveIndex(), m.menu.Visible())
			if (k == widget.KeyEnter || k == widget.KeySpace) && !m.menu.Visible() {
				m.noteSelection()
			}
			return nil
		}
		if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
			if m.menu.HandleRune(keyMsg.Runes[0]) {
				events.Menu.Typeahead(string(keyMsg.Runes), m.menu.ActiveIndex())
			}
		}
		return nil
	}

	if m.button.HandleKey(k) {
		m.forceClearInfo()
		events.Button.Open(m.menu.ActiveIndex())
		return nil
	}
	if k == widget.KeyEscape {
		return tea.Quit
	}
	return nil
}
