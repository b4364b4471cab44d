package ui

import (
	"strings"

	"github.com/atomicstack/menu-editor/internal/format/table"
	"github.com/atomicstack/menu-editor/internal/menu"
	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	listTitle     = "Our Menu"
	formTitle     = "Add New Menu Item"
	emptyText     = "No menu items added yet"
	emptyHint     = `Press F2 or "a" to create your menu`
	courseLabel   = "Select Course Type:"
	submitLabel   = "[ Add to Menu ]"
	itemIndicator = "▌"
	ellipsis      = "…"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	top := m.chromeLines()
	bottom := m.statusLines()
	var body []styledLine
	if m.session.Tab() == state.TabAdd {
		body = m.formLines()
	} else {
		body = m.listLines()
	}
	if m.height > 0 {
		body = limitHeight(body, m.height-len(top)-len(bottom), m.width)
	}
	lines := make([]styledLine, 0, len(top)+len(body)+len(bottom))
	lines = append(lines, top...)
	lines = append(lines, body...)
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, m.width))
}

// chromeLines renders the restaurant header and the tab bar.
func (m *Model) chromeLines() []styledLine {
	tabs := make([]string, 0, 2)
	for _, tab := range []state.Tab{state.TabView, state.TabAdd} {
		style := styles.Tab
		if tab == m.session.Tab() {
			style = styles.ActiveTab
		}
		tabs = append(tabs, render(style, tab.Label()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	ruleWidth := lipgloss.Width(bar)
	if m.width > ruleWidth {
		ruleWidth = m.width
	}
	return []styledLine{
		{text: render(styles.Header, m.title), raw: true},
		{text: m.subtitle, style: styles.Subtitle},
		{},
		{text: bar, raw: true},
		{text: strings.Repeat("─", ruleWidth), style: styles.ItemIndicator},
		{},
	}
}

// statusLines renders the info line and the optional key help.
func (m *Model) statusLines() []styledLine {
	lines := []styledLine{}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		bindings := m.keys.helpBindings(m.session.Tab(), m.form.focus)
		lines = append(lines, styledLine{}, styledLine{text: m.help.ShortHelpView(bindings), raw: true})
	}
	return lines
}

// listCapacity is the number of item rows that fit on the view tab, or -1
// when the height is unknown.
func (m *Model) listCapacity() int {
	if m.height <= 0 {
		return -1
	}
	used := len(m.chromeLines()) + len(m.statusLines()) + 2 // title + blank
	if remain := m.height - used; remain > 1 {
		return remain
	}
	return 1
}

func (m *Model) listLines() []styledLine {
	lines := []styledLine{{text: listTitle, style: styles.Title}, {}}
	items := m.session.Items()
	if len(items) == 0 {
		return append(lines,
			styledLine{text: emptyText, style: styles.Empty},
			styledLine{text: emptyHint, style: styles.EmptyHint},
		)
	}
	rows := m.itemRows(items)
	start, end := m.list.Window(m.listCapacity())
	end = min(end, len(rows))
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.buildItemLine(rows[idx], idx))
	}
	return lines
}

func (m *Model) itemRows(items []menu.Item) []string {
	cells := make([][]string, len(items))
	for i, item := range items {
		cells[i] = []string{item.Name, m.currency + item.Price, item.Course.String()}
	}
	return table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
}

// buildItemLine pads the selected row to the full width so its background
// spans the container.
func (m *Model) buildItemLine(row string, idx int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.list.Cursor {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedMarker
	}
	text := itemIndicator + " " + row
	if idx == m.list.Cursor && m.width > 0 {
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) formLines() []styledLine {
	f := m.form
	lines := []styledLine{
		{text: formTitle, style: styles.Title},
		{},
		{text: "Dish name", style: styles.Label},
		{text: f.name.View(), raw: true},
		{},
		{text: "Price", style: styles.Label},
		{text: f.price.View(), raw: true},
		{},
		{text: courseLabel, style: styles.Label},
		{text: m.courseRow(), raw: true},
		{},
	}
	button := styles.Button
	if f.focus == fieldSubmit {
		button = styles.FocusedButton
	}
	lines = append(lines, styledLine{text: submitLabel, style: button})
	if f.err != "" {
		lines = append(lines, styledLine{}, styledLine{text: f.err, style: styles.Error})
	}
	return lines
}

func (m *Model) courseRow() string {
	options := make([]string, 0, len(menu.Courses()))
	for _, course := range menu.Courses() {
		mark := "( )"
		style := styles.CourseOption
		if course == m.form.course {
			mark = "(•)"
			style = styles.CourseSelected
			if m.form.focus == fieldCourse && styles.CourseFocused != nil && style != nil {
				focused := style.Copy().Inherit(*styles.CourseFocused)
				style = &focused
			}
		}
		options = append(options, render(style, mark+" "+course.String()))
	}
	return strings.Join(options, "  ")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: fitWidth(ellipsis, width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: fitWidth(ellipsis, width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = fitWidth(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := render(line.prefixStyle, string(runes[:line.highlightFrom]))
			tail := render(line.style, string(runes[line.highlightFrom:]))
			text = head + tail
		} else {
			text = render(line.style, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// fitWidth truncates text to width terminal cells, keeping ANSI sequences
// intact and marking the cut with an ellipsis.
func fitWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return ellipsis
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}
