package events

import "github.com/atomicstack/menu-editor/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Select(from, to string) {
	logging.Trace("tab.select", map[string]interface{}{"from": from, "to": to})
}
