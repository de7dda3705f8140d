package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/popup-menu-button/internal/logging/events"
	"github.com/atomicstack/popup-menu-button/internal/markup"
	"github.com/atomicstack/popup-menu-button/internal/theme"
	"github.com/atomicstack/popup-menu-button/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// SetStyles replaces the shared style set. Called once before the
// program starts when a theme file is configured.
func SetStyles(s *theme.Styles) {
	if s != nil {
		styles = s
	}
}

type focusTarget int

const (
	focusButton focusTarget = iota
	focusMenu
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model hosting the pop-up button and
// its menu.
type Model struct {
	doc    *markup.Element
	button *widget.Button
	menu   *widget.Menu

	focus focusTarget
	keys  KeyMap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	infoMsg    string
	infoExpire time.Time

	// Row layout recorded for mouse hit-testing; the button renders on
	// buttonRow and item i on itemRowOffset+i while the menu is visible.
	buttonRow     int
	itemRowOffset int

	handlers map[reflect.Type]msgHandler
}

// NewModel binds the two controllers to the supplied host document.
func NewModel(doc *markup.Element, width, height int, showFooter, verbose bool) (*Model, error) {
	m := &Model{
		doc:           doc,
		keys:          DefaultKeyMap(),
		focus:         focusButton,
		showFooter:    showFooter,
		verbose:       verbose,
		buttonRow:     0,
		itemRowOffset: 1,
	}
	button, err := widget.NewButton(doc, m)
	if err != nil {
		return nil, err
	}
	menu, err := widget.NewMenu(doc, button, m)
	if err != nil {
		return nil, err
	}
	button.Attach(menu)
	m.button = button
	m.menu = menu
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	if m.menu.Visible() {
		m.menu.HandleBlur()
		events.Menu.Blur()
	}
	return nil
}

// FocusButton implements widget.Focuser.
func (m *Model) FocusButton() {
	m.focus = focusButton
	events.Button.Focus()
}

// FocusMenu implements widget.Focuser.
func (m *Model) FocusMenu() {
	m.focus = focusMenu
}

// Button exposes the trigger controller.
func (m *Model) Button() *widget.Button {
	return m.button
}

// Menu exposes the menu controller.
func (m *Model) Menu() *widget.Menu {
	return m.menu
}

// Selection returns the label of the committed item, or "" when none.
func (m *Model) Selection() string {
	return m.menu.ItemLabel(m.menu.SelectedIndex())
}

// noteSelection surfaces a just-committed selection in trace logs and,
// in verbose mode, the info line.
func (m *Model) noteSelection() {
	idx := m.menu.SelectedIndex()
	if idx < 0 {
		return
	}
	item := m.menu.Items()[idx]
	events.Menu.Select(item.ID(), item.Text)
	if m.verbose {
		m.setInfo("Selected " + item.Text)
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
