package menu

// Store holds the session's menu items in insertion order. It only grows.
type Store interface {
	Append(Item)
	List() []Item
	Len() int
}

type store struct {
	items []Item
}

// NewStore returns an empty Store.
func NewStore() Store {
	return &store{}
}

func (s *store) Append(item Item) {
	s.items = append(s.items, item)
}

// List returns a snapshot; callers may modify it freely.
func (s *store) List() []Item {
	return cloneItems(s.items)
}

func (s *store) Len() int {
	return len(s.items)
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
