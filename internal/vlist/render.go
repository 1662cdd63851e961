package vlist

// Style carries the absolute geometry of one in-window row so the caller can
// position it without recomputing offsets.
type Style struct {
	// Top is the row's absolute vertical offset from the start of the list,
	// in height units.
	Top int
	// Height is the row's current height: measured if known, else estimated.
	Height int
}

// Row pairs an item with its index and geometry. Only in-window items are
// ever emitted, so resources scale with the window plus overscan rather than
// the total item count.
type Row[T any] struct {
	Item  T
	Index int
	Style Style
}

// rowsForRange maps a window range onto positioned rows. Purely geometric: it
// knows nothing about how the caller renders an item.
func rowsForRange[T any](items []T, h *heightIndex, r Range) []Row[T] {
	if r.Empty() || len(items) == 0 {
		return nil
	}
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end >= len(items) {
		end = len(items) - 1
	}
	if end < start {
		return nil
	}

	rows := make([]Row[T], 0, end-start+1)
	top := h.Offset(start)
	for i := start; i <= end; i++ {
		ih := h.Height(i)
		rows = append(rows, Row[T]{
			Item:  items[i],
			Index: i,
			Style: Style{Top: top, Height: ih},
		})
		top += ih
	}
	return rows
}
