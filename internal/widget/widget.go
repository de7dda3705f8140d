// Package widget implements the pop-up button and the accessible menu it
// controls. Both controllers bind to elements located in the host markup
// tree at construction and live for the process lifetime. State is held
// explicitly on the controllers and projected onto element attributes
// after every mutation, so assistive tooling reading the tree always sees
// the current visibility, active item, and selected item.
package widget

// Key identifies the keyboard inputs the controllers understand. The
// host surface translates its native key events into these before
// calling HandleKey.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEscape
)

// Anchor is the narrow callback surface the menu needs from its trigger:
// push the committed label and return input focus. The menu never sees
// the concrete Button type.
type Anchor interface {
	OnSelect(text string)
	FocusTrigger()
}

// Focuser routes input-focus requests to the host surface.
type Focuser interface {
	FocusButton()
	FocusMenu()
}
