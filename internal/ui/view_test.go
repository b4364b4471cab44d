package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/atomicstack/menu-editor/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsHeaderTabsAndEmptyState(t *testing.T) {
	h, _ := newTestModel(t, Options{})
	view := testutil.Plain(h.View())
	for _, want := range []string{
		"Christoffel's Kitchen",
		"Fine Dining Experience",
		"View Menu",
		"Add Item",
		"Our Menu",
		"No menu items added yet",
		`Press F2 or "a" to create your menu`,
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestViewRendersAlignedRows(t *testing.T) {
	session := state.NewSession(nil, nil)
	commit(t, session, "Garlic Bread", "45")
	commit(t, session, "Steak", "120")
	h := NewHarness(NewModel(session, Options{Currency: "$"}))

	lines := testutil.Lines(h.View())
	bread := testutil.IndexOfLine(h.View(), "Garlic Bread")
	steak := testutil.IndexOfLine(h.View(), "Steak")
	if bread < 0 || steak != bread+1 {
		t.Fatalf("expected consecutive rows, got %d and %d", bread, steak)
	}
	if !strings.HasSuffix(lines[bread], "Garlic Bread   $45  Main") {
		t.Fatalf("unexpected row %q", lines[bread])
	}
	if !strings.HasSuffix(lines[steak], "Steak         $120  Main") {
		t.Fatalf("unexpected row %q", lines[steak])
	}
	if strings.Contains(testutil.Plain(h.View()), "No menu items added yet") {
		t.Fatalf("expected empty state to disappear")
	}
}

func TestAddTabShowsForm(t *testing.T) {
	h, _ := newTestModel(t, Options{})
	h.Press(tea.KeyF2)
	view := testutil.Plain(h.View())
	for _, want := range []string{
		"Add New Menu Item",
		"Dish name",
		namePlaceholder,
		pricePlaceholder,
		"Select Course Type:",
		"(•) Main",
		"( ) Starter",
		"( ) Dessert",
		"( ) Drink",
		"[ Add to Menu ]",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected add view to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Our Menu") {
		t.Fatalf("expected list hidden on add tab")
	}
}

func TestFooterListsBindingsForActiveTab(t *testing.T) {
	h, _ := newTestModel(t, Options{ShowFooter: true})
	view := testutil.Plain(h.View())
	if !strings.Contains(view, "quit") || !strings.Contains(view, "add item") {
		t.Fatalf("expected view tab help, got:\n%s", view)
	}
	h.Press(tea.KeyF2)
	view = testutil.Plain(h.View())
	if !strings.Contains(view, "next field") || !strings.Contains(view, "add to menu") {
		t.Fatalf("expected add tab help, got:\n%s", view)
	}
	if strings.Contains(view, "quit") {
		t.Fatalf("expected quit hint hidden while typing")
	}

	hidden, _ := newTestModel(t, Options{})
	if strings.Contains(testutil.Plain(hidden.View()), "quit") {
		t.Fatalf("expected footer hidden by default")
	}
}

func TestStatusLineShowsOnlyInfo(t *testing.T) {
	h, _ := newTestModel(t, Options{Verbose: true, ValidationHints: true})
	h.Press(tea.KeyF2)
	h.Press(tea.KeyEnter)
	lines := h.Model().statusLines()
	if len(lines) != 0 {
		t.Fatalf("expected rejection to stay inside the form, got %d status lines", len(lines))
	}

	addItem(h, "Garlic Bread", "45")
	lines = h.Model().statusLines()
	if len(lines) != 2 || lines[1].text != "Added Garlic Bread" {
		t.Fatalf("expected blank + info status lines, got %#v", lines)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	session := state.NewSession(nil, nil)
	commit(t, session, "Slow-roasted lamb shoulder with rosemary jus", "240")
	h := NewHarness(NewModel(session, Options{Width: 20}))
	for i, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("line %d exceeds width: %d %q", i, w, testutil.Plain(line))
		}
	}
	if !strings.Contains(testutil.Plain(h.View()), ellipsis) {
		t.Fatalf("expected truncated lines to end with an ellipsis")
	}
}

func TestViewLimitsHeight(t *testing.T) {
	h, _ := newTestModel(t, Options{Height: 8})
	h.Press(tea.KeyF2)
	lines := testutil.Lines(h.View())
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[len(lines)-1] != ellipsis {
		t.Fatalf("expected ellipsis on the last row, got %q", lines[len(lines)-1])
	}
}

func TestListScrollsWithCursor(t *testing.T) {
	session := state.NewSession(nil, nil)
	for i := 1; i <= 6; i++ {
		commit(t, session, fmt.Sprintf("Dish %d", i), "10")
	}
	// six rows of chrome, title and blank leave four item rows
	h := NewHarness(NewModel(session, Options{Height: 12}))
	if got := h.Model().listCapacity(); got != 4 {
		t.Fatalf("expected capacity 4, got %d", got)
	}
	view := testutil.Plain(h.View())
	if !strings.Contains(view, "Dish 1") || strings.Contains(view, "Dish 5") {
		t.Fatalf("expected first page, got:\n%s", view)
	}

	h.Press(tea.KeyEnd)
	view = testutil.Plain(h.View())
	if !strings.Contains(view, "Dish 6") || strings.Contains(view, "Dish 2") {
		t.Fatalf("expected last page, got:\n%s", view)
	}
	if h.Model().list.Cursor != 5 {
		t.Fatalf("expected cursor on last row, got %d", h.Model().list.Cursor)
	}

	h.Press(tea.KeyHome)
	if h.Model().list.Cursor != 0 || h.Model().list.ViewportOffset != 0 {
		t.Fatalf("expected cursor and viewport reset, got %d/%d", h.Model().list.Cursor, h.Model().list.ViewportOffset)
	}

	h.Type("j")
	h.Press(tea.KeyDown)
	if h.Model().list.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", h.Model().list.Cursor)
	}
	h.Type("k")
	if h.Model().list.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", h.Model().list.Cursor)
	}
	h.Press(tea.KeyPgDown)
	if h.Model().list.Cursor != 5 {
		t.Fatalf("expected page down to reach 5, got %d", h.Model().list.Cursor)
	}
	h.Press(tea.KeyPgUp)
	if h.Model().list.Cursor != 1 {
		t.Fatalf("expected page up to return to 1, got %d", h.Model().list.Cursor)
	}
}

func TestSelectedRowHighlightSpansWidth(t *testing.T) {
	session := state.NewSession(nil, nil)
	commit(t, session, "Soup", "30")
	h := NewHarness(NewModel(session, Options{Width: 30}))
	idx := testutil.IndexOfLine(h.View(), "Soup")
	raw := strings.Split(h.View(), "\n")[idx]
	if w := lipgloss.Width(raw); w != 30 {
		t.Fatalf("expected highlighted row width 30, got %d", w)
	}
	if !strings.HasPrefix(testutil.Plain(raw), itemIndicator+" Soup") {
		t.Fatalf("unexpected row %q", testutil.Plain(raw))
	}
}

func commit(t *testing.T, session *state.Session, name, price string) {
	t.Helper()
	session.SelectTab(state.TabAdd)
	session.SetName(name)
	session.SetPrice(price)
	if result, err := session.Submit(); result != state.Committed {
		t.Fatalf("expected commit of %q, got %v", name, err)
	}
}
