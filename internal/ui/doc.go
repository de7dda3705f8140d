// Package ui contains the Bubble Tea program that hosts the pop-up
// button widget. The Model focuses on message orchestration: incoming
// messages are routed through a typed handler registry so each tea.Msg
// is handled by a focused function.
//
// Message flow:
//   - Key presses are translated into widget keys and routed to whichever
//     controller currently owns input focus. The button consumes open
//     keys while the menu is hidden; a visible menu owns navigation,
//     commit, escape, and typeahead keys.
//   - Mouse events are hit-tested against the rows the view rendered:
//     motion over an item makes it active, a click on the trigger toggles
//     the menu, a click on an item commits it, and a click elsewhere
//     blurs (and therefore hides) a visible menu.
//   - Terminal focus loss (tea.BlurMsg) also blurs the menu.
//
// State ownership:
//   - Widget state (visibility, active item, selected item) lives on the
//     controllers in internal/widget and is projected onto the host
//     element tree; the Model only tracks presentation concerns such as
//     focus owner, viewport size, and the transient info line.
package ui
