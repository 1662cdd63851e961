package vlist

import "time"

// scrollState owns the scroll position for one list instance.
type scrollState struct {
	offset         int
	viewportHeight int

	// guard suppresses position bookkeeping for the single scroll event that
	// echoes a programmatic scroll, preventing a restore -> scroll event ->
	// restore feedback loop.
	guard bool

	// scroll deltas arriving faster than the throttle interval are coalesced
	// into pendingDelta and applied on the next event or explicit flush
	lastApplied  time.Time
	pendingDelta int
}

func (s *scrollState) clamp(total int) {
	maxOffset := total - s.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// scrollBy coalesces delta into the pending amount and applies it when the
// throttle interval has elapsed. Returns true when the offset changed and the
// window should recompute; false means the delta is parked for a later flush.
func (s *scrollState) scrollBy(delta, total int, throttle time.Duration, now time.Time) bool {
	s.pendingDelta += delta
	if now.Sub(s.lastApplied) < throttle {
		return false
	}
	return s.flush(total, now)
}

// flush applies any coalesced scroll delta.
func (s *scrollState) flush(total int, now time.Time) bool {
	if s.pendingDelta == 0 {
		return false
	}
	prev := s.offset
	s.offset += s.pendingDelta
	s.pendingDelta = 0
	s.lastApplied = now
	s.clamp(total)
	return s.offset != prev
}

// scrollTo jumps directly to offset, clamped. Pending throttled deltas are
// dropped so they cannot land on top of the jump.
func (s *scrollState) scrollTo(offset, total int) {
	s.offset = offset
	s.pendingDelta = 0
	s.clamp(total)
}

// scrollToIndex issues exactly one programmatic scroll to the top of item i,
// clamped to the last valid index rather than failing when out of range.
// Sets the guard flag; the clamped index is returned.
func (s *scrollState) scrollToIndex(h *heightIndex, i int) int {
	if h.Count() == 0 {
		s.scrollTo(0, 0)
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i > h.Count()-1 {
		i = h.Count() - 1
	}
	s.scrollTo(h.Offset(i), h.TotalHeight())
	s.guard = true
	return i
}

// consumeGuard reports whether the current scroll event is the echo of a
// programmatic scroll, clearing the flag either way.
func (s *scrollState) consumeGuard() bool {
	g := s.guard
	s.guard = false
	return g
}
