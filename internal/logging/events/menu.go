package events

import "github.com/atomicstack/menu-editor/internal/logging"

type DraftTracer struct{}

type MenuTracer struct{}

type draftReason string

const (
	DraftReasonNavigate draftReason = "navigate"
	DraftReasonCommit   draftReason = "commit"
)

var (
	Draft = DraftTracer{}
	Menu  = MenuTracer{}
)

func (DraftTracer) Edit(field, value string) {
	logging.Trace("draft.edit", map[string]interface{}{"field": field, "value": value})
}

func (DraftTracer) Reset(reason draftReason) {
	logging.Trace("draft.reset", map[string]interface{}{"reason": string(reason)})
}

func (MenuTracer) Commit(id, name, price, course string, total int) {
	logging.Trace("menu.commit", map[string]interface{}{
		"id":     id,
		"name":   name,
		"price":  price,
		"course": course,
		"total":  total,
	})
}

func (MenuTracer) Reject(err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.reject", map[string]interface{}{"error": err.Error()})
}

func (MenuTracer) Cursor(cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor})
}
