package theme

import "github.com/charmbracelet/lipgloss"

const (
	accent = lipgloss.Color("#cc6600")
	muted  = lipgloss.Color("#999999")
	text   = lipgloss.Color("#333333")
	price  = lipgloss.Color("#2e8b57")
	white  = lipgloss.Color("#ffffff")
	border = lipgloss.Color("#dddddd")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header         *lipgloss.Style
	Subtitle       *lipgloss.Style
	Tab            *lipgloss.Style
	ActiveTab      *lipgloss.Style
	Title          *lipgloss.Style
	Item           *lipgloss.Style
	ItemIndicator  *lipgloss.Style
	SelectedItem   *lipgloss.Style
	SelectedMarker *lipgloss.Style
	Empty          *lipgloss.Style
	EmptyHint      *lipgloss.Style
	Label          *lipgloss.Style
	Input          *lipgloss.Style
	FocusedInput   *lipgloss.Style
	Placeholder    *lipgloss.Style
	CourseOption   *lipgloss.Style
	CourseSelected *lipgloss.Style
	CourseFocused  *lipgloss.Style
	Button         *lipgloss.Style
	FocusedButton  *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	Cursor         *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(white).Background(accent).Bold(true).Padding(0, 1),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(accent).Italic(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 2),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(white).Background(accent).Bold(true).Padding(0, 2),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(text),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(border),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(white).Background(accent).Bold(true),
	),
	SelectedMarker: ptr(
		lipgloss.NewStyle().Foreground(accent),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	),
	EmptyHint: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(text).Bold(true),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(text),
	),
	FocusedInput: ptr(
		lipgloss.NewStyle().Foreground(accent),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
	CourseOption: ptr(
		lipgloss.NewStyle().Foreground(accent),
	),
	CourseSelected: ptr(
		lipgloss.NewStyle().Foreground(white).Background(accent).Bold(true),
	),
	CourseFocused: ptr(
		lipgloss.NewStyle().Underline(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(white).Background(accent).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(price),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(white).Background(accent),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
