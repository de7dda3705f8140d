package ui

import (
	"strings"

	"github.com/atomicstack/popup-menu-button/internal/markup"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "↑/↓ move  enter select  esc close  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. The trigger renders on row 0 and item i on
// row itemRowOffset+i while the menu is visible; handleMouseMsg relies
// on that layout.
func (m *Model) View() string {
	lines := make([]styledLine, 0, m.menu.Len()+5)
	lines = append(lines, m.buildButtonLine())
	if m.menu.Visible() {
		for i := range m.menu.Items() {
			lines = append(lines, m.buildItemLine(i))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) buildButtonLine() styledLine {
	style := styles.Button
	if m.focus == focusButton {
		style = styles.ButtonFocused
	}
	return styledLine{
		text:          "▾ " + m.button.Label(),
		style:         style,
		prefixStyle:   styles.ButtonIndicator,
		highlightFrom: 1, // just the ▾ character
	}
}

func (m *Model) buildItemLine(idx int) styledLine {
	item := m.menu.Items()[idx]
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	selected := item.HasAttr(markup.AttrSelected)
	if selected {
		lineStyle = styles.SelectedMark
	}
	if idx == m.menu.ActiveIndex() {
		lineStyle = styles.ActiveItem
		indicatorStyle = styles.ActiveIndicator
	}
	text := "▌ " + item.Text
	if selected {
		text += " ✓"
	}
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		runes := []rune(text)
		return string(runes[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
