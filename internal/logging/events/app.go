package events

import "github.com/atomicstack/popup-menu-button/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(selection string) {
	logging.Trace("app.exit", map[string]interface{}{"selection": selection})
}
