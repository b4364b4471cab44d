package events

import "github.com/atomicstack/menu-editor/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(items int) {
	logging.Trace("app.quit", map[string]interface{}{"items": items})
}
