package widget

import (
	"errors"

	"github.com/atomicstack/popup-menu-button/internal/markup"
)

// Button controls the trigger element of the pop-up pattern. It owns the
// visible label and delegates visibility changes to the attached menu.
type Button struct {
	el    *markup.Element
	menu  *Menu
	focus Focuser
}

// NewButton locates the trigger element in the host tree and binds to it.
func NewButton(doc *markup.Element, focus Focuser) (*Button, error) {
	el := doc.FindByRole(markup.RoleButton)
	if el == nil {
		return nil, errors.New("markup: no element with role \"button\"")
	}
	return &Button{el: el, focus: focus}, nil
}

// Attach wires the menu this button controls.
func (b *Button) Attach(menu *Menu) {
	b.menu = menu
}

// ToggleMenu flips the visibility of the attached menu.
func (b *Button) ToggleMenu() {
	if b.menu == nil {
		return
	}
	b.menu.Toggle()
}

// HandleKey opens the menu on down/enter/space while it is hidden, with
// the first item active, and reports whether the event was consumed. A
// visible menu owns its own keys, so the event falls through untouched.
func (b *Button) HandleKey(k Key) bool {
	if b.menu == nil || b.menu.Visible() {
		return false
	}
	switch k {
	case KeyDown, KeyEnter, KeySpace:
		b.menu.ActivateItem(0)
		b.menu.Show()
		return true
	}
	return false
}

// SetValue updates the trigger's visible label.
func (b *Button) SetValue(text string) {
	b.el.Text = text
}

// Label returns the trigger's current visible label.
func (b *Button) Label() string {
	return b.el.Text
}

// Focus moves input focus back to the trigger.
func (b *Button) Focus() {
	if b.focus != nil {
		b.focus.FocusButton()
	}
}

// Element exposes the bound trigger element.
func (b *Button) Element() *markup.Element {
	return b.el
}

// OnSelect implements Anchor: the menu pushes the committed item's text
// into the trigger label.
func (b *Button) OnSelect(text string) {
	b.SetValue(text)
}

// FocusTrigger implements Anchor.
func (b *Button) FocusTrigger() {
	b.Focus()
}
