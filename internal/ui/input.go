package ui

import (
	"github.com/atomicstack/menu-editor/internal/logging/events"
	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.session.Tab() == state.TabAdd {
		return m.handleAddKey(keyMsg)
	}
	return m.handleViewKey(keyMsg)
}

func (m *Model) handleViewKey(msg tea.KeyMsg) tea.Cmd {
	moved := false
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.AddTab), key.Matches(msg, m.keys.AddLetter):
		return m.selectTab(state.TabAdd)
	case key.Matches(msg, m.keys.ViewTab), key.Matches(msg, m.keys.ViewLetter):
		return nil
	case key.Matches(msg, m.keys.Up):
		moved = m.list.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		moved = m.list.MoveCursorDown()
	case key.Matches(msg, m.keys.PageUp):
		moved = m.list.MoveCursorPageUp(m.listCapacity())
	case key.Matches(msg, m.keys.PageDown):
		moved = m.list.MoveCursorPageDown(m.listCapacity())
	case key.Matches(msg, m.keys.Home):
		moved = m.list.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		moved = m.list.MoveCursorEnd()
	}
	if moved {
		m.list.EnsureCursorVisible(m.listCapacity())
		events.Menu.Cursor(m.list.Cursor)
	}
	return nil
}

func (m *Model) handleAddKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ViewTab), key.Matches(msg, m.keys.Back):
		return m.selectTab(state.TabView)
	case key.Matches(msg, m.keys.AddTab):
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		return m.form.nextField()
	case key.Matches(msg, m.keys.PrevField):
		return m.form.prevField()
	}
	switch m.form.focus {
	case fieldCourse:
		return m.handleCourseKey(msg)
	case fieldSubmit:
		if key.Matches(msg, m.keys.Press) {
			return m.submit()
		}
		return nil
	}
	return m.editDraft(msg)
}

func (m *Model) handleCourseKey(msg tea.KeyMsg) tea.Cmd {
	course := m.form.course
	switch {
	case key.Matches(msg, m.keys.PrevCourse):
		course = course.Prev()
	case key.Matches(msg, m.keys.NextCourse):
		course = course.Next()
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		picked, ok := m.form.pickCourseByRune(msg.Runes[0])
		if !ok {
			return nil
		}
		course = picked
	default:
		return nil
	}
	m.session.SetCourse(course)
	m.form.course = m.session.Draft().Course
	return nil
}

// editDraft feeds a key to the focused text input and stores the result in
// the session's draft.
func (m *Model) editDraft(msg tea.KeyMsg) tea.Cmd {
	cmd := m.form.updateFocused(msg)
	draft := m.session.Draft()
	if name := m.form.name.Value(); name != draft.Name {
		m.session.SetName(name)
	}
	if price := m.form.price.Value(); price != draft.Price {
		m.session.SetPrice(price)
	}
	if m.form.err != "" {
		m.form.err = ""
	}
	return cmd
}

func (m *Model) quit() tea.Cmd {
	events.App.Quit(len(m.session.Items()))
	return tea.Quit
}
