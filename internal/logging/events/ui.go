package events

import "github.com/atomicstack/popup-menu-button/internal/logging"

type ButtonTracer struct{}

type MenuTracer struct{}

var (
	Button = ButtonTracer{}
	Menu   = MenuTracer{}
)

func (ButtonTracer) Open(active int) {
	logging.Trace("button.open", map[string]interface{}{"active": active})
}

func (ButtonTracer) Toggle(visible bool) {
	logging.Trace("button.toggle", map[string]interface{}{"visible": visible})
}

func (ButtonTracer) Focus() {
	logging.Trace("button.focus", nil)
}

func (MenuTracer) Key(key string, active int, visible bool) {
	logging.Trace("menu.key", map[string]interface{}{
		"key":     key,
		"active":  active,
		"visible": visible,
	})
}

func (MenuTracer) Hover(index int) {
	logging.Trace("menu.hover", map[string]interface{}{"index": index})
}

func (MenuTracer) Typeahead(ch string, active int) {
	logging.Trace("menu.typeahead", map[string]interface{}{"char": ch, "active": active})
}

func (MenuTracer) Select(id, label string) {
	logging.Trace("menu.select", map[string]interface{}{"id": id, "label": label})
}

func (MenuTracer) Blur() {
	logging.Trace("menu.blur", nil)
}
