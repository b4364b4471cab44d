package state

import (
	"errors"
	"testing"

	"github.com/atomicstack/menu-editor/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIDs always returns the same identifier; used to show the session never
// relies on the generator for anything but the id field.
type fixedIDs string

func (f fixedIDs) NextID() string { return string(f) }

func newSession() *Session {
	return NewSession(menu.NewStore(), &menu.Sequence{})
}

func addItem(t *testing.T, s *Session, name, price string) menu.Item {
	t.Helper()
	s.SelectTab(TabAdd)
	s.SetName(name)
	s.SetPrice(price)
	result, err := s.Submit()
	require.NoError(t, err)
	require.Equal(t, Committed, result)
	item, ok := s.LastCommitted()
	require.True(t, ok)
	return item
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(nil, nil)
	assert.Equal(t, TabView, s.Tab())
	assert.Equal(t, EmptyDraft(), s.Draft())
	assert.Empty(t, s.Items())
	_, ok := s.LastCommitted()
	assert.False(t, ok)
}

func TestSelectTabToAddKeepsDraftAndStore(t *testing.T) {
	s := newSession()
	s.SetName("Soup")
	s.SelectTab(TabAdd)
	assert.Equal(t, TabAdd, s.Tab())
	assert.Equal(t, "Soup", s.Draft().Name)
	assert.Empty(t, s.Items())
}

func TestSelectTabToViewDiscardsDraft(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	s.SetName("Soup")
	s.SetPrice("30")
	s.SetCourse(menu.CourseStarter)

	s.SelectTab(TabView)

	assert.Equal(t, TabView, s.Tab())
	assert.Equal(t, EmptyDraft(), s.Draft())
	assert.Empty(t, s.Items())
}

func TestSelectSameTabIsNoOp(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	s.SetName("Soup")
	s.SelectTab(TabAdd)
	assert.Equal(t, "Soup", s.Draft().Name)
}

func TestSettersOverwriteWithoutValidation(t *testing.T) {
	s := newSession()
	s.SetName("   ")
	s.SetPrice("not a number")
	s.SetCourse(menu.CourseDrink)
	assert.Equal(t, Draft{Name: "   ", Price: "not a number", Course: menu.CourseDrink}, s.Draft())

	s.SetCourse(menu.Course(99))
	assert.Equal(t, menu.CourseDrink, s.Draft().Course)
}

func TestSubmitPreservesOrder(t *testing.T) {
	s := newSession()
	names := []string{"Garlic Bread", "Steak", "Chocolate Cake"}
	for _, name := range names {
		addItem(t, s, name, "10")
	}
	items := s.Items()
	require.Len(t, items, len(names))
	for i, item := range items {
		assert.Equal(t, names[i], item.Name)
	}
}

func TestSubmitRejectsMissingName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		s := newSession()
		s.SelectTab(TabAdd)
		s.SetName(name)
		s.SetPrice("45")

		result, err := s.Submit()

		assert.Equal(t, Rejected, result)
		assert.True(t, errors.Is(err, ErrNameRequired))
		assert.False(t, errors.Is(err, ErrPriceRequired))
		assert.Empty(t, s.Items())
		assert.Equal(t, TabAdd, s.Tab())
		assert.Equal(t, Draft{Name: name, Price: "45", Course: menu.CourseMain}, s.Draft())
	}
}

func TestSubmitRejectsMissingPrice(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	s.SetName("Steak")
	s.SetPrice(" ")

	result, err := s.Submit()

	assert.Equal(t, Rejected, result)
	assert.ErrorIs(t, err, ErrPriceRequired)
	assert.Empty(t, s.Items())
	assert.Equal(t, TabAdd, s.Tab())
	assert.Equal(t, "Steak", s.Draft().Name)
}

func TestSubmitReportsBothMissingFields(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.ErrorIs(t, err, ErrPriceRequired)
}

func TestSubmitTrimsFields(t *testing.T) {
	s := newSession()
	item := addItem(t, s, "  Steak  ", " 120 ")
	assert.Equal(t, "Steak", item.Name)
	assert.Equal(t, "120", item.Price)
	assert.Equal(t, item, s.Items()[0])
}

func TestSubmitResetsDraftAndReturnsToView(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	s.SetName("Cake")
	s.SetPrice("85")
	s.SetCourse(menu.CourseDessert)

	result, err := s.Submit()

	require.NoError(t, err)
	assert.Equal(t, Committed, result)
	assert.Equal(t, Draft{Name: "", Price: "", Course: menu.CourseMain}, s.Draft())
	assert.Equal(t, TabView, s.Tab())
	assert.Equal(t, menu.CourseDessert, s.Items()[0].Course)
}

func TestSubmitAssignsDistinctIDs(t *testing.T) {
	s := newSession()
	first := addItem(t, s, "Tea", "15")
	second := addItem(t, s, "Tea", "15")
	assert.NotEqual(t, first.ID, second.ID)

	uuids := NewSession(menu.NewStore(), menu.UUIDs{})
	a := addItem(t, uuids, "Tea", "15")
	b := addItem(t, uuids, "Tea", "15")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubmitUsesGeneratorID(t *testing.T) {
	s := NewSession(menu.NewStore(), fixedIDs("dish-1"))
	item := addItem(t, s, "Tea", "15")
	assert.Equal(t, "dish-1", item.ID)
}

func TestSubmitDefaultsToMainCourse(t *testing.T) {
	s := newSession()
	item := addItem(t, s, "Burger", "95")
	assert.Equal(t, menu.CourseMain, item.Course)
}

func TestDoubleSubmitIsNotDeduplicated(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	s.SetName("Wine")
	s.SetPrice("60")
	first, _ := s.Submit()
	second, err := s.Submit()
	assert.Equal(t, Committed, first)
	assert.Equal(t, Rejected, second)
	assert.Error(t, err)
	assert.Len(t, s.Items(), 1)
}

func TestGarlicBreadScenario(t *testing.T) {
	s := newSession()
	s.SelectTab(TabAdd)
	s.SetName("Garlic Bread")
	s.SetPrice("45")

	result, err := s.Submit()

	require.NoError(t, err)
	assert.Equal(t, Committed, result)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Garlic Bread", items[0].Name)
	assert.Equal(t, "45", items[0].Price)
	assert.Equal(t, menu.CourseMain, items[0].Course)
	assert.Equal(t, TabView, s.Tab())
}
