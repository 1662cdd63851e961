package vlist

import (
	"testing"

	"github.com/svannberg/rig/internal/fixtures"
)

func TestScrollMemorySaveRestore(t *testing.T) {
	m := NewScrollMemory()

	_, ok := m.Restore("events")
	fixtures.Cmp(t, false, ok)

	m.Save("events", 1234)
	offset, ok := m.Restore("events")
	fixtures.Cmp(t, true, ok)
	fixtures.Cmp(t, 1234, offset)
}

func TestScrollMemoryKeysAreIsolated(t *testing.T) {
	m := NewScrollMemory()
	m.Save("events", 100)
	m.Save("reports", 900)

	offset, _ := m.Restore("events")
	fixtures.Cmp(t, 100, offset)
	offset, _ = m.Restore("reports")
	fixtures.Cmp(t, 900, offset)
}

func TestScrollMemoryClear(t *testing.T) {
	m := NewScrollMemory()
	m.Save("events", 100)
	m.Save("reports", 900)

	m.Clear("events")
	_, ok := m.Restore("events")
	fixtures.Cmp(t, false, ok)
	_, ok = m.Restore("reports")
	fixtures.Cmp(t, true, ok)

	m.Reset()
	_, ok = m.Restore("reports")
	fixtures.Cmp(t, false, ok)
}

func TestScrollMemoryEdgeCases(t *testing.T) {
	m := NewScrollMemory()

	// empty keys never persist
	m.Save("", 500)
	_, ok := m.Restore("")
	fixtures.Cmp(t, false, ok)

	// negative offsets clamp to the top
	m.Save("events", -10)
	offset, _ := m.Restore("events")
	fixtures.Cmp(t, 0, offset)

	// a nil memory is inert rather than a crash
	var nilMem *ScrollMemory
	nilMem.Save("events", 100)
	nilMem.Clear("events")
	nilMem.Reset()
	_, ok = nilMem.Restore("events")
	fixtures.Cmp(t, false, ok)
}
