package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-menu-button/internal/logging/events"
	"github.com/atomicstack/popup-menu-button/internal/markup"
	"github.com/atomicstack/popup-menu-button/internal/theme"
	"github.com/atomicstack/popup-menu-button/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Label      string
	Items      []string
	ThemePath  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run assembles the host document, binds the widget, and executes the
// Bubble Tea program. A selection committed before exit is written to
// stdout.
func Run(cfg Config) error {
	doc := markup.BuildDocument(cfg.Label, cfg.Items)

	if cfg.ThemePath != "" {
		styles, err := theme.Load(cfg.ThemePath)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		ui.SetStyles(styles)
	}

	model, err := ui.NewModel(doc, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("bind widget: %w", err)
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}

	if m, ok := final.(*ui.Model); ok {
		if selection := m.Selection(); selection != "" {
			events.App.Exit(selection)
			fmt.Println(selection)
		}
	}
	return nil
}
