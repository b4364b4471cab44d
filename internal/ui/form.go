package ui

import (
	"errors"
	"unicode"

	"github.com/atomicstack/menu-editor/internal/menu"
	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldName formField = iota
	fieldPrice
	fieldCourse
	fieldSubmit
	fieldCount
)

const (
	namePlaceholder  = "Enter dish name (e.g., Garlic Bread, Steak, Chocolate Cake)"
	pricePlaceholder = "Enter price (e.g., 45, 120, 85)"
	courseQueryLimit = 8
)

// addForm renders the draft. It never validates; the session decides what
// may be committed.
type addForm struct {
	name        textinput.Model
	price       textinput.Model
	course      menu.Course
	focus       formField
	courseQuery string
	err         string
}

func newAddForm() *addForm {
	return &addForm{
		name:   newFormInput(namePlaceholder),
		price:  newFormInput(pricePlaceholder),
		course: menu.DefaultCourse,
	}
}

// newFormInput accepts values of any length; Width covers the prompt, the
// cursor cell and the whole placeholder.
func newFormInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Prompt = "> "
	ti.Width = lipgloss.Width(ti.Prompt) + lipgloss.Width(placeholder) + 1
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Input != nil {
		ti.TextStyle = styles.Input.Copy()
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = styles.Placeholder.Copy()
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = styles.Cursor.Copy()
	}
	return ti
}

// load copies draft into the inputs.
func (f *addForm) load(draft state.Draft) {
	f.name.SetValue(draft.Name)
	f.price.SetValue(draft.Price)
	f.course = draft.Course
	f.courseQuery = ""
}

func (f *addForm) focusField(field formField) tea.Cmd {
	if field < 0 || field >= fieldCount {
		field = fieldName
	}
	f.focus = field
	f.courseQuery = ""
	f.name.Blur()
	f.price.Blur()
	var cmd tea.Cmd
	switch field {
	case fieldName:
		cmd = f.name.Focus()
	case fieldPrice:
		cmd = f.price.Focus()
	}
	f.applyPromptStyles()
	return cmd
}

func (f *addForm) blur() {
	f.name.Blur()
	f.price.Blur()
	f.focus = fieldName
	f.courseQuery = ""
	f.applyPromptStyles()
}

func (f *addForm) nextField() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *addForm) prevField() tea.Cmd {
	return f.focusField((f.focus - 1 + fieldCount) % fieldCount)
}

func (f *addForm) applyPromptStyles() {
	for _, pair := range []struct {
		input   *textinput.Model
		focused bool
	}{
		{&f.name, f.focus == fieldName && f.name.Focused()},
		{&f.price, f.focus == fieldPrice && f.price.Focused()},
	} {
		if pair.focused && styles.FocusedInput != nil {
			pair.input.PromptStyle = styles.FocusedInput.Copy()
		} else if styles.Placeholder != nil {
			pair.input.PromptStyle = styles.Placeholder.Copy()
		}
	}
}

// updateFocused forwards msg to the focused text input.
func (f *addForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldPrice:
		f.price, cmd = f.price.Update(msg)
	}
	return cmd
}

// pickCourseByRune extends the typed course query with r and selects the
// best matching course. A fragment that stops matching restarts from r.
func (f *addForm) pickCourseByRune(r rune) (menu.Course, bool) {
	if !unicode.IsLetter(r) {
		return f.course, false
	}
	query := f.courseQuery + string(r)
	if len(query) > courseQueryLimit {
		query = string(r)
	}
	course, ok := menu.MatchCourse(query)
	if !ok {
		query = string(r)
		course, ok = menu.MatchCourse(query)
	}
	if !ok {
		f.courseQuery = ""
		return f.course, false
	}
	f.courseQuery = query
	return course, true
}

func validationMessage(err error) string {
	missingName := errors.Is(err, state.ErrNameRequired)
	missingPrice := errors.Is(err, state.ErrPriceRequired)
	switch {
	case missingName && missingPrice:
		return "Enter a dish name and a price"
	case missingName:
		return "Enter a dish name"
	case missingPrice:
		return "Enter a price"
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
