package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/menu-editor/internal/menu"
	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/atomicstack/menu-editor/internal/theme"
	uistate "github.com/atomicstack/menu-editor/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle    = "Christoffel's Kitchen"
	defaultSubtitle = "Fine Dining Experience"
	defaultCurrency = "R"
	infoDuration    = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the presentation settings for a Model. Width and Height
// pin the size; InitialWidth and InitialHeight only seed it until the first
// window size message arrives.
type Options struct {
	Width           int
	Height          int
	InitialWidth    int
	InitialHeight   int
	ShowFooter      bool
	Verbose         bool
	ValidationHints bool
	Title           string
	Subtitle        string
	Currency        string
}

// itemCommittedMsg follows a successful submit.
type itemCommittedMsg struct {
	item menu.Item
}

// Model implements the Bubble Tea model for the menu editor.
type Model struct {
	session *state.Session
	form    *addForm
	list    uistate.List
	keys    keyMap
	help    help.Model

	title           string
	subtitle        string
	currency        string
	width           int
	height          int
	fixedWidth      bool
	fixedHeight     bool
	showFooter      bool
	verbose         bool
	validationHints bool
	infoMsg         string
	infoExpire      time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps session in a Bubble Tea model. A nil session starts an
// empty one.
func NewModel(session *state.Session, opts Options) *Model {
	if session == nil {
		session = state.NewSession(nil, nil)
	}
	m := &Model{
		session:         session,
		form:            newAddForm(),
		keys:            newKeyMap(),
		help:            newHelp(),
		title:           orDefault(opts.Title, defaultTitle),
		subtitle:        orDefault(opts.Subtitle, defaultSubtitle),
		currency:        opts.Currency,
		showFooter:      opts.ShowFooter,
		verbose:         opts.Verbose,
		validationHints: opts.ValidationHints,
	}
	if opts.Currency == "" {
		m.currency = defaultCurrency
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	} else if opts.InitialWidth > 0 {
		m.width = opts.InitialWidth
		m.help.Width = opts.InitialWidth
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	} else if opts.InitialHeight > 0 {
		m.height = opts.InitialHeight
	}
	m.form.load(session.Draft())
	m.syncList()
	m.registerHandlers()
	return m
}

// Session exposes the controller backing the model.
func (m *Model) Session() *state.Session {
	return m.session
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.title)}
	if m.session.Tab() == state.TabAdd {
		cmds = append(cmds, m.form.focusField(fieldName))
	}
	return batch(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.session.Tab() == state.TabAdd {
		return m, m.form.updateFocused(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(itemCommittedMsg{}):  m.handleItemCommittedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncList()
	return nil
}

func (m *Model) handleItemCommittedMsg(msg tea.Msg) tea.Cmd {
	committed, ok := msg.(itemCommittedMsg)
	if !ok {
		return nil
	}
	if m.verbose {
		m.setInfo("Added " + committed.item.Name)
	}
	return nil
}

// selectTab moves the session to tab and brings the form in line with the
// session's draft.
func (m *Model) selectTab(tab state.Tab) tea.Cmd {
	if tab == m.session.Tab() {
		return nil
	}
	m.session.SelectTab(tab)
	m.form.err = ""
	m.form.load(m.session.Draft())
	if tab == state.TabAdd {
		return m.form.focusField(fieldName)
	}
	m.form.blur()
	m.syncList()
	return nil
}

// submit commits the draft. A rejection leaves everything as typed; the
// inline hint only appears when validation hints are enabled.
func (m *Model) submit() tea.Cmd {
	result, err := m.session.Submit()
	if result != state.Committed {
		if m.validationHints {
			m.form.err = validationMessage(err)
		}
		return nil
	}
	item, _ := m.session.LastCommitted()
	m.form.err = ""
	m.form.load(m.session.Draft())
	m.form.blur()
	m.syncList()
	m.list.MoveCursorEnd()
	m.list.EnsureCursorVisible(m.listCapacity())
	return func() tea.Msg { return itemCommittedMsg{item: item} }
}

func (m *Model) syncList() {
	m.list.SetLen(len(m.session.Items()))
	m.list.EnsureCursorVisible(m.listCapacity())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func batch(cmds []tea.Cmd) tea.Cmd {
	live := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			live = append(live, cmd)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	default:
		return tea.Batch(live...)
	}
}
