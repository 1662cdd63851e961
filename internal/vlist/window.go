package vlist

// Range is a contiguous, inclusive span of item indexes: the window of items
// currently mounted.
type Range struct {
	Start int
	End   int
}

func emptyRange() Range {
	return Range{Start: 0, End: -1}
}

func (r Range) Empty() bool {
	return r.End < r.Start
}

func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) Contains(i int) bool {
	return !r.Empty() && r.Start <= i && i <= r.End
}

// visibleRange computes the window of item indexes whose vertical span
// intersects [scrollOffset - overscan*estimate, scrollOffset + viewportHeight
// + overscan*estimate]. Start and end are found by binary search over the
// memoized cumulative offsets; right after a bulk height invalidation the
// offsets are not reconstructible in O(log n), so a bounded linear scan is
// used until they have been rebuilt.
func visibleRange(h *heightIndex, scrollOffset, viewportHeight, overscan int) Range {
	n := h.Count()
	if n == 0 || viewportHeight <= 0 {
		return emptyRange()
	}

	pad := overscan * h.Estimate()

	if h.bulkInvalidated {
		// the memoized offsets were just tossed wholesale; walking the items
		// once beats rebuilding the entire offset array for a single frame
		return scanRange(h, scrollOffset, viewportHeight, pad)
	}

	total := h.TotalHeight()
	maxOffset := total - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if scrollOffset > maxOffset {
		// scrolled past the end, clamp so the window lands on the last items
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	lo := scrollOffset - pad
	hi := scrollOffset + viewportHeight + pad

	start := h.IndexAt(lo)
	end := h.IndexAt(hi)
	if end >= n {
		end = n - 1
	}
	if start < 0 {
		start = 0
	}
	return Range{Start: start, End: end}
}

// scanRange walks items front to back accumulating heights instead of
// touching the memoized offsets. Bounded by the item count; only used
// transiently after a bulk invalidation.
func scanRange(h *heightIndex, scrollOffset, viewportHeight, pad int) Range {
	n := h.Count()
	total := 0
	for i := 0; i < n; i++ {
		total += h.Height(i)
	}
	maxOffset := total - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	lo := scrollOffset - pad
	hi := scrollOffset + viewportHeight + pad

	start, end := n-1, n-1
	foundStart := false
	offset := 0
	for i := 0; i < n; i++ {
		ih := h.Height(i)
		if !foundStart && offset+ih > lo {
			start = i
			foundStart = true
		}
		if offset > hi {
			end = i - 1
			break
		}
		offset += ih
	}
	h.bulkInvalidated = false
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}
