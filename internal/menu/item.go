package menu

// Item is a single dish on the menu. Name and Price are stored trimmed and
// are never empty once an item reaches a Store.
type Item struct {
	ID     string
	Name   string
	Price  string
	Course Course
}
