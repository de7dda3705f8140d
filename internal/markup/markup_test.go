package markup

import (
	"strconv"
	"strings"
	"testing"
)

func TestNextIDFormatAndMonotonicity(t *testing.T) {
	first := NextID()
	second := NextID()
	for _, id := range []string{first, second} {
		if !strings.HasPrefix(id, ":") {
			t.Fatalf("expected id with ':' prefix, got %q", id)
		}
		if _, err := strconv.Atoi(id[1:]); err != nil {
			t.Fatalf("expected numeric id suffix, got %q", id)
		}
	}
	a, _ := strconv.Atoi(first[1:])
	b, _ := strconv.Atoi(second[1:])
	if b <= a {
		t.Fatalf("expected ids to increase, got %q then %q", first, second)
	}
}

func TestAttrLifecycle(t *testing.T) {
	el := NewElement("li")
	if el.HasAttr(AttrActive) {
		t.Fatalf("expected fresh element without active marker")
	}
	el.SetAttr(AttrActive, "true")
	if v, ok := el.Attr(AttrActive); !ok || v != "true" {
		t.Fatalf("expected active=true, got %q (present=%v)", v, ok)
	}
	el.RemoveAttr(AttrActive)
	if el.HasAttr(AttrActive) {
		t.Fatalf("expected active marker removed")
	}
	// Removing an absent attribute must not panic.
	el.RemoveAttr(AttrActive)
}

func TestFindByRoleSearchesDescendants(t *testing.T) {
	doc := NewElement("body")
	wrapper := NewElement("div")
	menu := NewElement("ul")
	menu.SetAttr(AttrRole, RoleMenu)
	group := NewElement("li")
	nested := NewElement("span")
	nested.SetAttr(AttrRole, RoleMenuItem)
	nested.Text = "Deep"
	direct := NewElement("li")
	direct.SetAttr(AttrRole, RoleMenuItem)
	direct.Text = "Shallow"
	group.Append(nested)
	menu.Append(direct, group)
	wrapper.Append(menu)
	doc.Append(wrapper)

	if found := doc.FindByRole(RoleMenu); found != menu {
		t.Fatalf("expected menu container found through wrapper")
	}
	items := doc.FindAllByRole(RoleMenuItem)
	if len(items) != 2 {
		t.Fatalf("expected 2 items including nested one, got %d", len(items))
	}
	if items[0].Text != "Shallow" || items[1].Text != "Deep" {
		t.Fatalf("expected document order, got %q then %q", items[0].Text, items[1].Text)
	}
	if doc.FindByRole(RoleButton) != nil {
		t.Fatalf("expected nil for absent role")
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument("Actions", []string{"Cut", "Copy", "Paste"})

	trigger := doc.FindByRole(RoleButton)
	if trigger == nil {
		t.Fatalf("expected trigger element")
	}
	if trigger.Text != "Actions" {
		t.Fatalf("expected trigger label Actions, got %q", trigger.Text)
	}
	if !trigger.HasAttr(AttrHasPopup) {
		t.Fatalf("expected trigger marked as pop-up control")
	}

	menu := doc.FindByRole(RoleMenu)
	if menu == nil {
		t.Fatalf("expected menu container")
	}
	if !menu.HasAttr(AttrHidden) {
		t.Fatalf("expected menu to start hidden")
	}

	items := menu.FindAllByRole(RoleMenuItem)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	labels := []string{"Cut", "Copy", "Paste"}
	for i, item := range items {
		if item.Text != labels[i] {
			t.Fatalf("expected item %d label %q, got %q", i, labels[i], item.Text)
		}
	}
}

func TestJoinIDs(t *testing.T) {
	if got := JoinIDs([]string{":1", ":2", ":3"}); got != ":1 :2 :3" {
		t.Fatalf("expected space-joined ids, got %q", got)
	}
	if got := JoinIDs(nil); got != "" {
		t.Fatalf("expected empty join for no ids, got %q", got)
	}
}
