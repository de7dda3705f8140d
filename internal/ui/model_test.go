package ui

import (
	"testing"

	"github.com/atomicstack/popup-menu-button/internal/markup"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	doc := markup.BuildDocument("Actions", []string{"Cut", "Copy", "Paste"})
	m, err := NewModel(doc, 0, 0, false, false)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func TestNewModelBindsBothControllers(t *testing.T) {
	m := newTestModel(t)
	if m.Button() == nil || m.Menu() == nil {
		t.Fatalf("expected both controllers bound")
	}
	if m.Menu().Visible() {
		t.Fatalf("expected menu hidden at startup")
	}
	if m.focus != focusButton {
		t.Fatalf("expected trigger focused at startup")
	}
}

func TestNewModelRequiresWidgetMarkup(t *testing.T) {
	if _, err := NewModel(markup.NewElement("body"), 0, 0, false, false); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestSpaceOnButtonOpensMenu(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace})

	m := h.Model()
	if !m.Menu().Visible() {
		t.Fatalf("expected menu visible after space on the trigger")
	}
	if m.Menu().ActiveIndex() != 0 {
		t.Fatalf("expected first item active, got %d", m.Menu().ActiveIndex())
	}
	if m.focus != focusMenu {
		t.Fatalf("expected focus moved into the menu")
	}
}

func TestKeyboardSelectionRoundTrip(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace}) // open, Cut active
	h.Send(tea.KeyMsg{Type: tea.KeyDown})  // Copy
	h.Send(tea.KeyMsg{Type: tea.KeyDown})  // Paste
	h.Send(tea.KeyMsg{Type: tea.KeyDown})  // wraps to Cut
	h.Send(tea.KeyMsg{Type: tea.KeyEnter}) // commit

	m := h.Model()
	if m.Selection() != "Cut" {
		t.Fatalf("expected selection Cut, got %q", m.Selection())
	}
	if m.Button().Label() != "Cut" {
		t.Fatalf("expected trigger label Cut, got %q", m.Button().Label())
	}
	if m.Menu().Visible() {
		t.Fatalf("expected menu hidden after commit")
	}
	if m.focus != focusButton {
		t.Fatalf("expected focus back on the trigger")
	}
}

func TestEscapeClosesThenQuits(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.KeyMsg{Type: tea.KeyEscape})
	if m.Menu().Visible() {
		t.Fatalf("expected menu hidden by escape")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected quit command for escape while hidden")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTerminalBlurHidesMenu(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.BlurMsg{})

	if h.Model().Menu().Visible() {
		t.Fatalf("expected menu hidden after terminal blur")
	}
}

func TestTypeaheadRuneMovesActiveItem(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})

	if got := h.Model().Menu().ActiveIndex(); got != 2 {
		t.Fatalf("expected Paste active via typeahead, got %d", got)
	}
}

func TestMouseHoverActivatesItem(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionMotion})

	m := h.Model()
	if m.Menu().ActiveIndex() != 2 {
		t.Fatalf("expected item 2 active after hover, got %d", m.Menu().ActiveIndex())
	}
	if !m.Menu().Visible() {
		t.Fatalf("expected visibility unchanged by hover")
	}
	if m.Menu().SelectedIndex() != -1 {
		t.Fatalf("expected selection unchanged by hover")
	}
}

func TestMouseClickOnItemSelects(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	m := h.Model()
	if m.Selection() != "Copy" {
		t.Fatalf("expected Copy selected, got %q", m.Selection())
	}
	if m.Menu().Visible() {
		t.Fatalf("expected menu hidden after click selection")
	}
}

func TestMouseClickOnTriggerToggles(t *testing.T) {
	h := NewHarness(newTestModel(t))
	press := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	h.Send(press)
	m := h.Model()
	if !m.Menu().Visible() {
		t.Fatalf("expected menu shown by trigger click")
	}
	if m.Menu().ActiveIndex() != -1 {
		t.Fatalf("expected no active item after pointer toggle, got %d", m.Menu().ActiveIndex())
	}

	h.Send(press)
	if m.Menu().Visible() {
		t.Fatalf("expected menu hidden by second trigger click")
	}
}

func TestMouseClickOutsideBlursMenu(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.MouseMsg{X: 0, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if h.Model().Menu().Visible() {
		t.Fatalf("expected menu hidden by outside click")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	doc := markup.BuildDocument("Actions", []string{"Cut"})
	m, err := NewModel(doc, 40, 0, false, false)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 40 {
		t.Fatalf("expected fixed width 40, got %d", m.width)
	}
	if m.height != 50 {
		t.Fatalf("expected height tracked from terminal, got %d", m.height)
	}
}

func TestVerboseSelectionSetsInfoLine(t *testing.T) {
	doc := markup.BuildDocument("Actions", []string{"Cut", "Copy", "Paste"})
	m, err := NewModel(doc, 0, 0, false, true)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.currentInfo(); got != "Selected Cut" {
		t.Fatalf("expected info line for committed selection, got %q", got)
	}
}
