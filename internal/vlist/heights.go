package vlist

import "sort"

// heightTolerance is the height delta at or below which a re-measurement does
// not invalidate cached cumulative offsets. Repeated measurements of the same
// row tend to jitter by a cell without the layout actually changing.
const heightTolerance = 1

// bulkInvalidationSpan is the number of cached offsets that must be tossed by
// a single measurement before the window computation falls back to a linear
// scan until the offsets have been rebuilt.
const bulkInvalidationSpan = 512

// heightIndex tracks per-item heights and memoized cumulative offsets.
// Every item starts at the shared default estimate; a recorded measurement is
// authoritative from then on and is never overwritten by an estimate.
type heightIndex struct {
	estimate int
	count    int
	measured map[int]int

	// offsets[i] is the cumulative height of items [0, i). offsets[0] is
	// always 0. Entries at index <= validTo are trustworthy; everything
	// beyond is rebuilt lazily on the next read.
	offsets         []int
	validTo         int
	bulkInvalidated bool
}

func newHeightIndex(count, estimate int) *heightIndex {
	if count < 0 {
		count = 0
	}
	if estimate <= 0 {
		estimate = DefaultItemHeightEstimate
	}
	return &heightIndex{
		estimate: estimate,
		count:    count,
		measured: make(map[int]int),
		offsets:  []int{0},
	}
}

func (h *heightIndex) Count() int {
	return h.count
}

func (h *heightIndex) Estimate() int {
	return h.estimate
}

// Height returns the measured height for index i if known, else the default
// estimate. Out of range indexes return the estimate rather than failing:
// measurement callbacks can race with list truncation.
func (h *heightIndex) Height(i int) int {
	if i < 0 || i >= h.count {
		return h.estimate
	}
	if m, ok := h.measured[i]; ok {
		return m
	}
	return h.estimate
}

// Record stores a measured height for index i and reports whether cached
// offsets were invalidated. Measurements for indexes outside the current
// ledger are silently ignored (the item may have been truncated away since
// the measurement was scheduled).
func (h *heightIndex) Record(i, height int) bool {
	if i < 0 || i >= h.count || height < 0 {
		return false
	}
	prev := h.Height(i)
	h.measured[i] = height
	delta := height - prev
	if delta < 0 {
		delta = -delta
	}
	if delta <= heightTolerance && h.validTo > i {
		// negligible change, keep the memoized offsets as-is
		return false
	}
	h.invalidateFrom(i)
	return true
}

// invalidateFrom marks cumulative offsets for all indexes > i as stale.
// Offsets up to and including i are unaffected by a height change at i.
func (h *heightIndex) invalidateFrom(i int) {
	if i < 0 {
		i = 0
	}
	if i >= h.validTo {
		return
	}
	if h.validTo-i > bulkInvalidationSpan {
		h.bulkInvalidated = true
	}
	h.validTo = i
}

// ensure extends the memoized offsets through index i.
func (h *heightIndex) ensure(i int) {
	if i > h.count {
		i = h.count
	}
	if i <= h.validTo {
		return
	}
	if cap(h.offsets) < h.count+1 {
		next := make([]int, h.validTo+1, h.count+1)
		copy(next, h.offsets[:h.validTo+1])
		h.offsets = next
	}
	h.offsets = h.offsets[:h.validTo+1]
	for j := h.validTo; j < i; j++ {
		h.offsets = append(h.offsets, h.offsets[j]+h.Height(j))
	}
	h.validTo = i
	if h.validTo == h.count {
		h.bulkInvalidated = false
	}
}

// Offset returns the cumulative height of items [0, i), recomputing lazily
// after invalidation. Out of range indexes clamp.
func (h *heightIndex) Offset(i int) int {
	if i <= 0 || h.count == 0 {
		return 0
	}
	if i > h.count {
		i = h.count
	}
	h.ensure(i)
	return h.offsets[i]
}

func (h *heightIndex) TotalHeight() int {
	return h.Offset(h.count)
}

// IndexAt returns the index of the item whose vertical span contains offset.
// This is a true cumulative-offset lookup, not offset divided by the
// estimate: once measured heights diverge from the estimate the division
// resolves to the wrong index. Offsets past the end clamp to the last index.
func (h *heightIndex) IndexAt(offset int) int {
	if h.count == 0 || offset <= 0 {
		return 0
	}
	h.ensure(h.count)
	i := sort.Search(h.count, func(j int) bool { return h.offsets[j+1] > offset })
	if i >= h.count {
		return h.count - 1
	}
	return i
}

// Append seeds default estimates for n newly appended items. Existing
// memoized offsets stay valid.
func (h *heightIndex) Append(n int) {
	if n > 0 {
		h.count += n
	}
}

// Truncate drops all records at index n and beyond.
func (h *heightIndex) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= h.count {
		return
	}
	for i := range h.measured {
		if i >= n {
			delete(h.measured, i)
		}
	}
	h.count = n
	if h.validTo > n {
		h.validTo = n
	}
}

// Reset discards all measurements and restarts the ledger at count items.
func (h *heightIndex) Reset(count int) {
	if count < 0 {
		count = 0
	}
	h.count = count
	h.measured = make(map[int]int)
	h.offsets = h.offsets[:1]
	h.validTo = 0
	h.bulkInvalidated = false
}
