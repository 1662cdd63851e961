package vlist

// ScrollMemory is a keyed store of last known scroll offsets, letting a list
// restore its position when remounted after navigating away. It is created by
// the caller and passed to each list rather than living as package state, so
// its lifecycle is explicit: save on unmount, restore on mount, clear on list
// reset (e.g. a filter change). All access happens on the program goroutine,
// so key isolation is the only discipline required.
type ScrollMemory struct {
	offsets map[string]int
}

func NewScrollMemory() *ScrollMemory {
	return &ScrollMemory{offsets: make(map[string]int)}
}

func (m *ScrollMemory) Save(key string, offset int) {
	if m == nil || key == "" {
		return
	}
	if offset < 0 {
		offset = 0
	}
	m.offsets[key] = offset
}

func (m *ScrollMemory) Restore(key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	offset, ok := m.offsets[key]
	return offset, ok
}

func (m *ScrollMemory) Clear(key string) {
	if m == nil {
		return
	}
	delete(m.offsets, key)
}

func (m *ScrollMemory) Reset() {
	if m == nil {
		return
	}
	clear(m.offsets)
}
