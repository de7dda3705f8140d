package widget

import (
	"errors"
	"strings"

	"github.com/atomicstack/popup-menu-button/internal/markup"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Visibility is the explicit menu visibility state, projected onto the
// container's aria-hidden attribute.
type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

// Menu controls the menu container and its fixed list of items. At most
// one item is active (highlighted) and at most one is selected
// (committed) at any time; visibility and active state are independent.
type Menu struct {
	el     *markup.Element
	items  []*markup.Element
	anchor Anchor
	focus  Focuser

	visibility    Visibility
	activeIndex   int
	selectedIndex int
}

// NewMenu locates the menu container in the host tree, collects its item
// elements (which need not be direct children), assigns each a fresh
// generated id, and records the ownership list on the container.
func NewMenu(doc *markup.Element, anchor Anchor, focus Focuser) (*Menu, error) {
	el := doc.FindByRole(markup.RoleMenu)
	if el == nil {
		return nil, errors.New("markup: no element with role \"menu\"")
	}
	items := el.FindAllByRole(markup.RoleMenuItem)
	ids := make([]string, len(items))
	for i, item := range items {
		id := markup.NextID()
		item.SetAttr(markup.AttrID, id)
		ids[i] = id
	}
	el.SetAttr(markup.AttrOwns, markup.JoinIDs(ids))

	m := &Menu{
		el:            el,
		items:         items,
		anchor:        anchor,
		focus:         focus,
		visibility:    Shown,
		activeIndex:   -1,
		selectedIndex: -1,
	}
	if el.HasAttr(markup.AttrHidden) {
		m.visibility = Hidden
	}
	return m, nil
}

// Visible reports whether the menu is currently shown.
func (m *Menu) Visible() bool {
	return m.visibility == Shown
}

// Len returns the number of tracked items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Items exposes the tracked item elements.
func (m *Menu) Items() []*markup.Element {
	return m.items
}

// ActiveIndex returns the highlighted item's index, or -1 when none.
func (m *Menu) ActiveIndex() int {
	return m.activeIndex
}

// SelectedIndex returns the committed item's index, or -1 when none.
func (m *Menu) SelectedIndex() int {
	return m.selectedIndex
}

// ItemLabel returns the display text of item i, or "" when out of range.
func (m *Menu) ItemLabel(i int) string {
	if i < 0 || i >= len(m.items) {
		return ""
	}
	return m.items[i].Text
}

// Element exposes the bound container element.
func (m *Menu) Element() *markup.Element {
	return m.el
}

// Show reveals the menu and moves input focus into it. Showing an
// already-visible menu is a no-op.
func (m *Menu) Show() {
	if m.visibility == Shown {
		return
	}
	m.visibility = Shown
	m.el.RemoveAttr(markup.AttrHidden)
	if m.focus != nil {
		m.focus.FocusMenu()
	}
}

// Hide conceals the menu, clears the active item and the current
// descendant bookkeeping, and returns input focus to the trigger. Hiding
// an already-hidden menu is a no-op.
func (m *Menu) Hide() {
	if m.visibility == Hidden {
		return
	}
	m.clearActive()
	m.el.RemoveAttr(markup.AttrActiveDescendant)
	m.visibility = Hidden
	m.el.SetAttr(markup.AttrHidden, "true")
	if m.anchor != nil {
		m.anchor.FocusTrigger()
	}
}

// Toggle shows a hidden menu and hides a visible one.
func (m *Menu) Toggle() {
	if m.visibility == Hidden {
		m.Show()
	} else {
		m.Hide()
	}
}

// SelectItem commits item i: the previous selection marker is cleared,
// item i is marked selected, its text is pushed through the anchor, and
// the menu hides. Out-of-range indices are ignored.
func (m *Menu) SelectItem(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.items) {
		m.items[m.selectedIndex].RemoveAttr(markup.AttrSelected)
	}
	m.selectedIndex = i
	item := m.items[i]
	item.SetAttr(markup.AttrSelected, "true")
	if m.anchor != nil {
		m.anchor.OnSelect(item.Text)
	}
	m.Hide()
}

// HandleKey processes a key press while the menu has input focus and
// reports whether it was consumed. Up/Left step backwards with
// wraparound (no active item counts as one past the end), Down/Right
// step forwards modulo the item count, Enter/Space commit the active
// item, and Escape hides the menu.
func (m *Menu) HandleKey(k Key) bool {
	switch k {
	case KeyUp, KeyLeft:
		idx := m.activeIndex
		if idx < 0 {
			idx = len(m.items)
		}
		idx--
		if idx < 0 {
			idx = len(m.items) - 1
		}
		m.changeActiveItem(idx)
		return true
	case KeyDown, KeyRight:
		idx := m.activeIndex + 1
		if idx >= len(m.items) {
			idx = 0
		}
		m.changeActiveItem(idx)
		return true
	case KeyEnter, KeySpace:
		if m.activeIndex >= 0 {
			m.SelectItem(m.activeIndex)
		}
		return true
	case KeyEscape:
		m.Hide()
		return true
	}
	return false
}

// ActivateItem makes item i the active (highlighted) entry without
// touching visibility or selection. Used by the hover path and by the
// trigger when it opens the menu from the keyboard.
func (m *Menu) ActivateItem(i int) {
	m.changeActiveItem(i)
}

// HandleClick commits the clicked entry when it is one of the tracked
// items.
func (m *Menu) HandleClick(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.SelectItem(i)
}

// HandleBlur hides the menu when input focus leaves the widget.
func (m *Menu) HandleBlur() {
	m.Hide()
}

// HandleRune moves the active item to the next entry whose label starts
// with the typed character, cycling past the end. When no label matches
// by prefix the best fuzzy match across all labels wins; no match at all
// is a silent no-op. Reports whether the active item moved.
func (m *Menu) HandleRune(r rune) bool {
	if len(m.items) == 0 {
		return false
	}
	query := strings.ToLower(string(r))
	n := len(m.items)
	start := m.activeIndex + 1
	for off := 0; off < n; off++ {
		i := (start + off) % n
		if strings.HasPrefix(strings.ToLower(m.items[i].Text), query) {
			m.changeActiveItem(i)
			return true
		}
	}
	labels := make([]string, n)
	for i, item := range m.items {
		labels[i] = item.Text
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	m.changeActiveItem(best.OriginalIndex)
	return true
}

// changeActiveItem moves the active marker from the previous item to the
// item at index i. Indices outside the tracked list and moves to the
// already-active item are ignored.
//
// TODO: mirror the new active item's id into aria-activedescendant on
// the container; today only Hide touches that attribute.
func (m *Menu) changeActiveItem(i int) {
	if i == m.activeIndex {
		return
	}
	if i < 0 || i >= len(m.items) {
		return
	}
	m.clearActive()
	m.activeIndex = i
	m.items[i].SetAttr(markup.AttrActive, "true")
}

func (m *Menu) clearActive() {
	if m.activeIndex >= 0 && m.activeIndex < len(m.items) {
		m.items[m.activeIndex].RemoveAttr(markup.AttrActive)
	}
	m.activeIndex = -1
}
