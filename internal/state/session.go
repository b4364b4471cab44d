package state

import (
	"fmt"

	"github.com/atomicstack/menu-editor/internal/logging/events"
	"github.com/atomicstack/menu-editor/internal/menu"
)

// Result is the outcome of Submit.
type Result int

const (
	Rejected Result = iota
	Committed
)

func (r Result) String() string {
	if r == Committed {
		return "committed"
	}
	return "rejected"
}

// Session owns the menu, the active tab and the add-form draft. Its methods
// are the only write path; it is meant for a single event loop and is not
// safe for concurrent use.
type Session struct {
	store menu.Store
	ids   menu.IDGenerator
	tab   Tab
	draft Draft
	last  *menu.Item
}

// NewSession starts on the view tab with an empty draft. Nil arguments are
// replaced with a fresh store and a sequence generator.
func NewSession(store menu.Store, ids menu.IDGenerator) *Session {
	if store == nil {
		store = menu.NewStore()
	}
	if ids == nil {
		ids = &menu.Sequence{}
	}
	return &Session{
		store: store,
		ids:   ids,
		tab:   TabView,
		draft: EmptyDraft(),
	}
}

func (s *Session) Tab() Tab { return s.tab }

func (s *Session) Draft() Draft { return s.draft }

func (s *Session) Items() []menu.Item { return s.store.List() }

// LastCommitted returns the most recently added item, if any.
func (s *Session) LastCommitted() (menu.Item, bool) {
	if s.last == nil {
		return menu.Item{}, false
	}
	return *s.last, true
}

// SelectTab switches screens. Leaving the add tab discards the draft.
func (s *Session) SelectTab(tab Tab) {
	if tab == s.tab {
		return
	}
	events.Tab.Select(s.tab.String(), tab.String())
	if s.tab == TabAdd {
		s.draft = EmptyDraft()
		events.Draft.Reset(events.DraftReasonNavigate)
	}
	s.tab = tab
}

func (s *Session) SetName(name string) {
	s.draft.Name = name
	events.Draft.Edit("name", name)
}

func (s *Session) SetPrice(price string) {
	s.draft.Price = price
	events.Draft.Edit("price", price)
}

func (s *Session) SetCourse(course menu.Course) {
	if !course.Valid() {
		return
	}
	s.draft.Course = course
	events.Draft.Edit("course", course.String())
}

// Submit commits the draft when its name and price are present. A rejected
// submit changes nothing; the returned error says which fields are missing.
func (s *Session) Submit() (Result, error) {
	if err := s.draft.Validate(); err != nil {
		events.Menu.Reject(err)
		return Rejected, fmt.Errorf("add menu item: %w", err)
	}
	item := s.draft.item(s.ids.NextID())
	s.store.Append(item)
	s.last = &item
	events.Menu.Commit(item.ID, item.Name, item.Price, item.Course.String(), s.store.Len())
	s.draft = EmptyDraft()
	events.Draft.Reset(events.DraftReasonCommit)
	if s.tab != TabView {
		events.Tab.Select(s.tab.String(), TabView.String())
		s.tab = TabView
	}
	return Committed, nil
}
