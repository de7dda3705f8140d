// Package markup models the host element tree the widget binds to. The
// hosting application assembles the tree once at startup; the button and
// menu controllers locate their elements by role and communicate state
// back to assistive tooling purely through attributes.
package markup

import (
	"strconv"
	"strings"

	"go.uber.org/atomic"
)

// Roles understood by the widget.
const (
	RoleButton   = "button"
	RoleMenu     = "menu"
	RoleMenuItem = "menuitem"
)

// Attribute names forming the contract with the host tree.
const (
	AttrRole             = "role"
	AttrID               = "id"
	AttrHasPopup         = "aria-haspopup"
	AttrHidden           = "aria-hidden"
	AttrOwns             = "aria-owns"
	AttrActiveDescendant = "aria-activedescendant"
	AttrSelected         = "aria-selected"
	AttrActive           = "active"
)

var idCounter atomic.Int64

// NextID returns a fresh element identifier of the form ":<n>". The
// counter is process-wide and monotonic.
func NextID() string {
	return ":" + strconv.FormatInt(idCounter.Inc(), 10)
}

// Element is a node in the host tree: a tag, display text, an attribute
// map, and ordered children.
type Element struct {
	Tag      string
	Text     string
	Children []*Element

	attrs map[string]string
}

// NewElement constructs an element with an empty attribute set.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, attrs: make(map[string]string)}
}

// Append adds child elements in order.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// SetAttr sets an attribute, overwriting any previous value.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports attribute presence; boolean markers such as
// aria-hidden and active are represented by presence alone.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttr deletes an attribute. Removing an absent attribute is a
// no-op.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// ID returns the element's id attribute, or "" when unset.
func (e *Element) ID() string {
	id, _ := e.Attr(AttrID)
	return id
}

// Role returns the element's role attribute, or "" when unset.
func (e *Element) Role() string {
	role, _ := e.Attr(AttrRole)
	return role
}

// FindByRole returns the first element with the given role in document
// order, searching the receiver and its descendants. Returns nil when no
// element matches.
func (e *Element) FindByRole(role string) *Element {
	if e == nil {
		return nil
	}
	if e.Role() == role {
		return e
	}
	for _, child := range e.Children {
		if found := child.FindByRole(role); found != nil {
			return found
		}
	}
	return nil
}

// FindAllByRole returns every element with the given role in document
// order. Matches need not be direct children of the receiver.
func (e *Element) FindAllByRole(role string) []*Element {
	if e == nil {
		return nil
	}
	var found []*Element
	if e.Role() == role {
		found = append(found, e)
	}
	for _, child := range e.Children {
		found = append(found, child.FindAllByRole(role)...)
	}
	return found
}

// BuildDocument assembles the host tree a page would supply: one trigger
// marked as a pop-up control and one menu container holding an item per
// label. The menu starts hidden.
func BuildDocument(label string, items []string) *Element {
	doc := NewElement("body")

	trigger := NewElement("button")
	trigger.Text = label
	trigger.SetAttr(AttrRole, RoleButton)
	trigger.SetAttr(AttrHasPopup, "true")

	container := NewElement("ul")
	container.SetAttr(AttrRole, RoleMenu)
	container.SetAttr(AttrHidden, "true")
	for _, item := range items {
		entry := NewElement("li")
		entry.Text = item
		entry.SetAttr(AttrRole, RoleMenuItem)
		container.Append(entry)
	}

	doc.Append(trigger, container)
	return doc
}

// JoinIDs renders an id list the way aria-owns expects it.
func JoinIDs(ids []string) string {
	return strings.Join(ids, " ")
}
