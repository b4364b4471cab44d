package state

// List tracks the highlighted row and the first visible row of a scrolling
// list whose entries live elsewhere. Only the count is stored here.
type List struct {
	Cursor         int
	ViewportOffset int
	count          int
}

// Len reports how many rows the list currently has.
func (l *List) Len() int {
	return l.count
}

// SetLen updates the row count and clamps the cursor and viewport to it.
func (l *List) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	l.count = n
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

// MoveCursorUp moves one row up.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves one row down.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first row.
func (l *List) MoveCursorHome() bool {
	if l.count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (l *List) MoveCursorEnd() bool {
	if l.count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.count - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if l.count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(l.Cursor+delta, 0, l.count-1)
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	if l.count == 0 {
		return 0
	}
	if maxVisible <= 0 || maxVisible > l.count {
		return l.count
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if l.count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, l.count-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(l.count-maxVisible, 0)
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Window returns the half-open range of rows to draw for maxVisible rows.
func (l *List) Window(maxVisible int) (start, end int) {
	if maxVisible <= 0 || l.count <= maxVisible {
		return 0, l.count
	}
	start = clamp(l.ViewportOffset, 0, l.count-maxVisible)
	return start, start + maxVisible
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
