package state

import "fmt"

// Tab identifies which of the two screens is showing.
type Tab int

const (
	TabView Tab = iota
	TabAdd
)

func (t Tab) String() string {
	switch t {
	case TabView:
		return "view"
	case TabAdd:
		return "add"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Label is the caption shown on the tab bar.
func (t Tab) Label() string {
	switch t {
	case TabView:
		return "View Menu"
	case TabAdd:
		return "Add Item"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}
