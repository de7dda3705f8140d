package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Button          *lipgloss.Style
	ButtonFocused   *lipgloss.Style
	ButtonIndicator *lipgloss.Style
	Item            *lipgloss.Style
	ItemIndicator   *lipgloss.Style
	ActiveItem      *lipgloss.Style
	ActiveIndicator *lipgloss.Style
	SelectedMark    *lipgloss.Style
	Info            *lipgloss.Style
	Error           *lipgloss.Style
	Footer          *lipgloss.Style
}

var defaultPalette = Palette{
	Button:        "249",
	ButtonFocused: "255",
	Item:          "249",
	ActiveItem:    "255",
	SelectedMark:  "34",
	Indicator:     "238",
	Info:          "249",
	Error:         "196",
	Footer:        "249",
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultPalette.Styles()
}

// Styles builds the full style set from a palette, falling back to the
// default color for any entry left empty.
func (p Palette) Styles() *Styles {
	color := func(value, fallback string) lipgloss.Color {
		if value == "" {
			value = fallback
		}
		return lipgloss.Color(value)
	}
	return &Styles{
		Button: ptr(
			lipgloss.NewStyle().Foreground(color(p.Button, defaultPalette.Button)),
		),
		ButtonFocused: ptr(
			lipgloss.NewStyle().Foreground(color(p.ButtonFocused, defaultPalette.ButtonFocused)).Bold(true),
		),
		ButtonIndicator: ptr(
			lipgloss.NewStyle().Foreground(color(p.Indicator, defaultPalette.Indicator)),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(color(p.Item, defaultPalette.Item)),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(color(p.Indicator, defaultPalette.Indicator)),
		),
		ActiveItem: ptr(
			lipgloss.NewStyle().Foreground(color(p.ActiveItem, defaultPalette.ActiveItem)).Background(lipgloss.Color("238")).Bold(true),
		),
		ActiveIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
		),
		SelectedMark: ptr(
			lipgloss.NewStyle().Foreground(color(p.SelectedMark, defaultPalette.SelectedMark)).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(color(p.Info, defaultPalette.Info)),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(color(p.Error, defaultPalette.Error)).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(color(p.Footer, defaultPalette.Footer)),
		),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
