package vlist

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/svannberg/rig/internal/fixtures"
)

func itemKey(item string, _ int) string {
	return item
}

func renderLines(item string, _ int, style Style) string {
	lines := make([]string, style.Height)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s.%d", item, i)
	}
	return strings.Join(lines, "\n")
}

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item%03d", i)
	}
	return items
}

func newTestModel(options ...Option[string]) Model[string] {
	defaults := []Option[string]{
		WithContainerHeight[string](600),
		WithItemHeightEstimate[string](200),
		WithOverscan[string](5),
	}
	return New(itemKey, renderLines, append(defaults, options...)...)
}

func TestModelWindowAtTop(t *testing.T) {
	m := newTestModel()
	m.SetItems(makeItems(100))
	fixtures.Cmp(t, Range{Start: 0, End: 8}, m.Window())

	rows := m.Rows()
	fixtures.Cmp(t, 9, len(rows))
	fixtures.Cmp(t, "item000", rows[0].Item)
	fixtures.Cmp(t, Style{Top: 0, Height: 200}, rows[0].Style)
	fixtures.Cmp(t, Style{Top: 1600, Height: 200}, rows[8].Style)
}

func TestModelScrollClampsToEnd(t *testing.T) {
	m := newTestModel()
	m.SetItems(makeItems(100))

	m.ScrollTo(50000)
	fixtures.Cmp(t, 19400, m.ScrollOffset())
	fixtures.Cmp(t, 99, m.Window().End)
}

func TestModelRecordHeightUpdatesPositions(t *testing.T) {
	m := newTestModel()
	m.SetItems(makeItems(100))

	m.RecordHeight(3, 400)

	// item 4 moved down immediately, with no scroll event in between
	fixtures.Cmp(t, 1000, m.ItemOffset(4))
	fixtures.Cmp(t, 600, m.ItemOffset(3))
	fixtures.Cmp(t, 20200, m.TotalHeight())

	rows := m.Rows()
	fixtures.Cmp(t, Style{Top: 600, Height: 400}, rows[3].Style)
	fixtures.Cmp(t, Style{Top: 1000, Height: 200}, rows[4].Style)
}

func TestModelRecordHeightIdempotent(t *testing.T) {
	m := newTestModel()
	m.SetItems(makeItems(100))

	m.RecordHeight(3, 400)
	w := m.Window()
	m.RecordHeight(3, 400)
	fixtures.Cmp(t, w, m.Window())
	fixtures.Cmp(t, 20200, m.TotalHeight())
}

func TestModelSetItemsPreservesHeightsOnAppend(t *testing.T) {
	m := newTestModel()
	m.SetItems(makeItems(50))
	m.RecordHeight(3, 400)

	// same items plus a new page: measurements survive
	m.SetItems(makeItems(100))
	fixtures.Cmp(t, 100, m.NumItems())
	fixtures.Cmp(t, 1000, m.ItemOffset(4))

	// structurally different items: measurements reset
	m.SetItems([]string{"other0", "other1"})
	fixtures.Cmp(t, 400, m.ItemOffset(2))
}

func TestModelScrollToIndexGuardsEcho(t *testing.T) {
	memory := NewScrollMemory()
	m := newTestModel(WithMemory[string]("events", memory))
	m.SetItems(makeItems(100))

	cmd := m.ScrollToIndex(10)
	if cmd == nil {
		t.Fatal("expected a command from ScrollToIndex")
	}
	fixtures.Cmp(t, 2000, m.ScrollOffset())

	// the echoed scroll event is absorbed exactly once
	m.Update(ScrolledMsg{Key: "events", Offset: 2000})
	fixtures.Cmp(t, false, m.scroll.guard)
}

func TestModelThrottleCoalescesKeyScrolls(t *testing.T) {
	clock := time.Unix(1000, 0)
	m := newTestModel()
	m.now = func() time.Time { return clock }
	m.SetItems(makeItems(100))

	m.ScrollBy(10)
	fixtures.Cmp(t, 10, m.ScrollOffset())

	// inside the throttle interval: parked, flush command scheduled
	clock = clock.Add(time.Millisecond)
	cmd := m.ScrollBy(5)
	if cmd == nil {
		t.Fatal("expected a flush command for the parked delta")
	}
	clock = clock.Add(time.Millisecond)
	m.ScrollBy(5)
	fixtures.Cmp(t, 10, m.ScrollOffset())

	clock = clock.Add(DefaultScrollThrottle)
	m.Update(FlushScrollMsg{Key: ""})
	fixtures.Cmp(t, 20, m.ScrollOffset())
}

func TestModelPagination(t *testing.T) {
	calls := 0
	loader := func(epoch int) tea.Cmd {
		calls++
		return func() tea.Msg {
			return LoadedMsg[string]{Key: "events", Epoch: epoch, Items: makeItems(100)[50:], HasNext: false}
		}
	}
	memory := NewScrollMemory()
	m := newTestModel(
		WithMemory[string]("events", memory),
		WithLoader[string](loader, true),
		WithLoadThreshold[string](5),
	)
	m.SetItems(makeItems(50))

	// scrolling near the end fires exactly one load
	cmd := m.ScrollTo(9000)
	if cmd == nil {
		t.Fatal("expected a load command near the end of the list")
	}
	fixtures.Cmp(t, 1, calls)
	fixtures.Cmp(t, true, m.IsLoadingMore())

	// further movement while loading fires nothing
	m.ScrollTo(9100)
	m.ScrollTo(9200)
	fixtures.Cmp(t, 1, calls)

	m.Update(cmd())
	fixtures.Cmp(t, LoadIdle, m.LoadState())
	fixtures.Cmp(t, 100, m.NumItems())
	fixtures.Cmp(t, 20000, m.TotalHeight())
}

func TestModelPaginationErrorAndRetry(t *testing.T) {
	calls := 0
	loadErr := errors.New("page request rejected")
	loader := func(epoch int) tea.Cmd {
		calls++
		return func() tea.Msg {
			return LoadedMsg[string]{Key: "events", Epoch: epoch, Err: loadErr}
		}
	}
	m := newTestModel(
		WithMemory[string]("events", NewScrollMemory()),
		WithLoader[string](loader, true),
	)
	m.SetItems(makeItems(50))

	cmd := m.ScrollTo(9000)
	fixtures.Cmp(t, 1, calls)
	m.Update(cmd())
	fixtures.Cmp(t, LoadError, m.LoadState())
	if m.Err() != loadErr {
		t.Errorf("expected %v, got %v", loadErr, m.Err())
	}

	// repeated threshold crossings never re-fire a failed load
	for i := 0; i < 5; i++ {
		m.ScrollTo(9000 + i)
	}
	fixtures.Cmp(t, 1, calls)

	// explicit retry is the only way forward
	retryCmd := m.Retry()
	if retryCmd == nil {
		t.Fatal("expected retry to re-fire the load")
	}
	fixtures.Cmp(t, 2, calls)
}

func TestModelStaleLoadDiscarded(t *testing.T) {
	loader := func(epoch int) tea.Cmd {
		return func() tea.Msg {
			return LoadedMsg[string]{Key: "events", Epoch: epoch, Items: []string{"late"}, HasNext: true}
		}
	}
	m := newTestModel(
		WithMemory[string]("events", NewScrollMemory()),
		WithLoader[string](loader, true),
	)
	m.SetItems(makeItems(50))

	cmd := m.ScrollTo(9000)
	// unmounting abandons the in-flight load
	m.Unmount()
	m.Update(cmd())
	fixtures.Cmp(t, 50, m.NumItems())
}

func TestModelMountRestoresPosition(t *testing.T) {
	memory := NewScrollMemory()
	m := newTestModel(WithMemory[string]("events", memory))
	m.SetItems(makeItems(100))

	m.ScrollTo(5130)
	m.Unmount()

	restored := newTestModel(WithMemory[string]("events", memory))
	restored.SetItems(makeItems(100))
	restored.Mount()

	// restored position lands on the item containing the saved offset,
	// so the drift is bounded by one item height
	fixtures.Cmp(t, 5000, restored.ScrollOffset())
	if drift := 5130 - restored.ScrollOffset(); drift < 0 || drift >= 200 {
		t.Errorf("restore drift %d exceeds one item height", drift)
	}
}

func TestModelClearMemory(t *testing.T) {
	memory := NewScrollMemory()
	m := newTestModel(WithMemory[string]("events", memory))
	m.SetItems(makeItems(100))
	m.ScrollTo(5000)

	m.ClearMemory()
	_, ok := memory.Restore("events")
	fixtures.Cmp(t, false, ok)
}

func TestModelMessagesForOtherKeysIgnored(t *testing.T) {
	m := newTestModel(WithMemory[string]("events", NewScrollMemory()))
	m.SetItems(makeItems(50))

	m.Update(LoadedMsg[string]{Key: "reports", Epoch: 0, Items: []string{"x"}})
	fixtures.Cmp(t, 50, m.NumItems())
}

func TestModelView(t *testing.T) {
	m := New(IndexKey[string], renderLines,
		WithContainerHeight[string](4),
		WithItemHeightEstimate[string](2),
		WithOverscan[string](0),
	)
	m.SetItems([]string{"a", "b", "c", "d"})

	fixtures.Cmp(t, "a.0\na.1\nb.0\nb.1", m.View())

	m.ScrollTo(3)
	fixtures.Cmp(t, "b.1\nc.0\nc.1\nd.0", m.View())
}

func TestModelViewEmpty(t *testing.T) {
	m := newTestModel()
	fixtures.Cmp(t, "", m.View())
}
