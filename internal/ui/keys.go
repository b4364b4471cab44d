package ui

import (
	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	ViewTab    key.Binding
	AddTab     key.Binding
	ViewLetter key.Binding
	AddLetter  key.Binding
	Back       key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	PrevCourse key.Binding
	NextCourse key.Binding
	Press      key.Binding
	Submit     key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ViewTab:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "view menu")),
		AddTab:     key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "add item")),
		ViewLetter: key.NewBinding(key.WithKeys("v", "1"), key.WithHelp("v", "view menu")),
		AddLetter:  key.NewBinding(key.WithKeys("a", "2"), key.WithHelp("a", "add item")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Home:       key.NewBinding(key.WithKeys("home", "g")),
		End:        key.NewBinding(key.WithKeys("end", "G")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab")),
		PrevCourse: key.NewBinding(key.WithKeys("left")),
		NextCourse: key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "course")),
		Press:      key.NewBinding(key.WithKeys(" ")),
		Submit:     key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "add to menu")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpBindings lists the hints shown in the footer for the current screen.
func (k keyMap) helpBindings(tab state.Tab, focus formField) []key.Binding {
	if tab == state.TabAdd {
		bindings := []key.Binding{k.NextField}
		if focus == fieldCourse {
			bindings = append(bindings, k.NextCourse)
		}
		return append(bindings, k.Submit, k.Back)
	}
	return []key.Binding{k.Up, k.Down, k.AddLetter, k.Quit}
}

func newHelp() help.Model {
	h := help.New()
	if styles.Footer != nil {
		h.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		h.Styles.ShortDesc = styles.Footer.Copy()
		h.Styles.ShortSeparator = styles.Footer.Copy()
	}
	return h
}
