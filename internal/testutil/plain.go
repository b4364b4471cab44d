// Package testutil holds helpers shared by view tests.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Plain strips ANSI escape sequences so rendered views can be compared as
// text regardless of the colour profile the test process detects.
func Plain(view string) string {
	return ansi.Strip(view)
}

// Lines returns the plain-text rows of a view with trailing spaces removed.
func Lines(view string) []string {
	rows := strings.Split(Plain(view), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
	}
	return rows
}

// IndexOfLine returns the first row containing substr, or -1.
func IndexOfLine(view, substr string) int {
	for i, row := range Lines(view) {
		if strings.Contains(row, substr) {
			return i
		}
	}
	return -1
}
