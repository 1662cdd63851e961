package vlist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/svannberg/rig/internal/dev"
)

// LoadedMsg resolves an in-flight page load for the list identified by Key.
// Epoch must carry the value the Loader was invoked with.
type LoadedMsg[T any] struct {
	Key     string
	Epoch   int
	Items   []T
	HasNext bool
	Err     error
}

// ScrolledMsg echoes a programmatic scroll so position bookkeeping happens in
// the update loop rather than inside the scroll call.
type ScrolledMsg struct {
	Key    string
	Offset int
}

// FlushScrollMsg applies scroll deltas parked by the throttle.
type FlushScrollMsg struct {
	Key string
}

// Model is a windowed list: only the items whose vertical span intersects the
// viewport (plus overscan) are materialized into rows, so render cost scales
// with the viewport rather than the item count.
type Model[T any] struct {
	cfg    Config
	keyMap KeyMap

	keyFn    KeyFunc[T]
	renderFn RenderFunc[T]

	items   []T
	keys    []string
	heights *heightIndex

	scroll scrollState
	window Range

	key    string
	memory *ScrollMemory

	pager  pager
	loader Loader

	// injectable for throttle tests
	now func() time.Time
}

func New[T any](keyFn KeyFunc[T], renderFn RenderFunc[T], options ...Option[T]) (m Model[T]) {
	m.cfg = DefaultConfig()
	m.keyMap = DefaultKeyMap()
	m.keyFn = keyFn
	m.renderFn = renderFn
	m.now = time.Now
	for _, opt := range options {
		opt(&m)
	}
	m.heights = newHeightIndex(0, m.cfg.ItemHeightEstimate)
	m.scroll.viewportHeight = m.cfg.ContainerHeight
	m.pager.threshold = m.cfg.LoadThreshold
	m.window = emptyRange()
	return m
}

func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	dev.DebugMsg("vlist "+m.key, msg)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case LoadedMsg[T]:
		if msg.Key != m.key {
			return nil
		}
		if !m.pager.resolve(msg.Epoch, msg.Err) {
			dev.Debug("discarding stale page load")
			return nil
		}
		if msg.Err != nil {
			return nil
		}
		m.appendItems(msg.Items)
		m.pager.hasNext = msg.HasNext
		m.recompute()
		return m.maybeLoadMore()

	case FlushScrollMsg:
		if msg.Key != m.key {
			return nil
		}
		if m.scroll.flush(m.heights.TotalHeight(), m.now()) {
			m.recompute()
			m.savePosition()
			return m.maybeLoadMore()
		}
		return nil

	case ScrolledMsg:
		if msg.Key != m.key {
			return nil
		}
		if m.scroll.consumeGuard() {
			// echo of a programmatic scroll, position already accounted for
			return nil
		}
		m.savePosition()
		return nil
	}
	return nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	half := m.scroll.viewportHeight / 2
	if half < 1 {
		half = 1
	}
	page := m.scroll.viewportHeight
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, m.keyMap.Up):
		return m.ScrollBy(-1)
	case key.Matches(msg, m.keyMap.Down):
		return m.ScrollBy(1)
	case key.Matches(msg, m.keyMap.HalfPageUp):
		return m.ScrollBy(-half)
	case key.Matches(msg, m.keyMap.HalfPageDown):
		return m.ScrollBy(half)
	case key.Matches(msg, m.keyMap.PageUp):
		return m.ScrollBy(-page)
	case key.Matches(msg, m.keyMap.PageDown):
		return m.ScrollBy(page)
	case key.Matches(msg, m.keyMap.Top):
		return m.ScrollTo(0)
	case key.Matches(msg, m.keyMap.Bottom):
		return m.ScrollTo(m.heights.TotalHeight())
	}
	return nil
}

// SetItems replaces the item set. When the new items are the old items plus a
// suffix (the usual shape after a page load or a re-render of unchanged
// data), existing height measurements survive; any other structural change
// resets them.
func (m *Model[T]) SetItems(items []T) {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = m.keyFn(item, i)
	}
	switch {
	case m.isPrefix(keys):
		grown := len(keys) - len(m.keys)
		m.items = items
		m.keys = keys
		if grown > 0 {
			m.heights.Append(grown)
		}
	default:
		m.items = items
		m.keys = keys
		m.heights.Reset(len(items))
	}
	m.recompute()
}

// isPrefix reports whether the current keys are a (possibly equal) prefix of
// the candidate keys.
func (m *Model[T]) isPrefix(keys []string) bool {
	if len(m.keys) > len(keys) {
		return false
	}
	for i, k := range m.keys {
		if keys[i] != k {
			return false
		}
	}
	return true
}

// Append adds items to the end of the list, seeding default height estimates
// for them.
func (m *Model[T]) Append(items []T) {
	m.appendItems(items)
	m.recompute()
}

func (m *Model[T]) appendItems(items []T) {
	base := len(m.items)
	m.items = append(m.items, items...)
	for i, item := range items {
		m.keys = append(m.keys, m.keyFn(item, base+i))
	}
	m.heights.Append(len(items))
}

// RecordHeight stores the measured height for the item at index i. When the
// measurement shifts cached offsets, positions of subsequent items update on
// this call, not on the next scroll event.
func (m *Model[T]) RecordHeight(i, height int) {
	if m.heights.Record(i, height) {
		m.scroll.clamp(m.heights.TotalHeight())
		m.recompute()
	}
}

func (m *Model[T]) SetContainerHeight(height int) {
	if height < 0 {
		height = 0
	}
	m.cfg.ContainerHeight = height
	m.scroll.viewportHeight = height
	m.scroll.clamp(m.heights.TotalHeight())
	m.recompute()
}

// ScrollBy adjusts the scroll offset by delta height units. Deltas arriving
// faster than the throttle interval are coalesced; a tick is scheduled so the
// parked delta lands even if no further input arrives.
func (m *Model[T]) ScrollBy(delta int) tea.Cmd {
	if m.scroll.scrollBy(delta, m.heights.TotalHeight(), m.cfg.ScrollThrottle, m.now()) {
		m.recompute()
		m.savePosition()
		return m.maybeLoadMore()
	}
	if m.scroll.pendingDelta != 0 {
		k := m.key
		return tea.Tick(m.cfg.ScrollThrottle, func(time.Time) tea.Msg {
			return FlushScrollMsg{Key: k}
		})
	}
	return nil
}

// ScrollTo jumps to the given offset, clamped to the valid scroll extent.
func (m *Model[T]) ScrollTo(offset int) tea.Cmd {
	m.scroll.scrollTo(offset, m.heights.TotalHeight())
	m.recompute()
	m.savePosition()
	return m.maybeLoadMore()
}

// ScrollToIndex aligns the top of the viewport with the top of item i,
// clamping out of range indexes to the nearest valid one. Exactly one scroll
// happens; the echoed ScrolledMsg is guarded so it does not double back into
// position bookkeeping.
func (m *Model[T]) ScrollToIndex(i int) tea.Cmd {
	m.scroll.scrollToIndex(m.heights, i)
	m.recompute()
	k, offset := m.key, m.scroll.offset
	cmds := []tea.Cmd{func() tea.Msg { return ScrolledMsg{Key: k, Offset: offset} }}
	if cmd := m.maybeLoadMore(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Mount restores the saved scroll position for this list's key, if any.
func (m *Model[T]) Mount() tea.Cmd {
	offset, ok := m.memory.Restore(m.key)
	if !ok {
		return m.maybeLoadMore()
	}
	return m.ScrollToIndex(m.heights.IndexAt(offset))
}

// Unmount saves the scroll position and abandons any in-flight page load.
func (m *Model[T]) Unmount() {
	m.memory.Save(m.key, m.scroll.offset)
	m.pager.invalidate()
}

// ClearMemory forgets the saved position for this list's key. Call when the
// item set changes identity, e.g. a filter was applied.
func (m *Model[T]) ClearMemory() {
	m.memory.Clear(m.key)
}

// Reset drops all items, measurements, and scroll position, and abandons any
// in-flight page load. Loading the new item set's first page is the caller's
// responsibility.
func (m *Model[T]) Reset() {
	m.items = nil
	m.keys = nil
	m.heights.Reset(0)
	m.scroll.scrollTo(0, 0)
	m.pager.invalidate()
	m.recompute()
}

func (m *Model[T]) savePosition() {
	m.memory.Save(m.key, m.scroll.offset)
}

func (m *Model[T]) maybeLoadMore() tea.Cmd {
	if m.loader == nil || !m.pager.shouldLoad(m.window.End, len(m.items)) {
		return nil
	}
	epoch := m.pager.begin()
	dev.Debug("requesting next page")
	return m.loader(epoch)
}

func (m *Model[T]) SetHasNextPage(hasNext bool) {
	m.pager.hasNext = hasNext
}

func (m *Model[T]) IsLoadingMore() bool {
	return m.pager.state == LoadLoading
}

func (m *Model[T]) LoadState() LoadState {
	return m.pager.state
}

// Err returns the error from the last failed page load, if the pager is in
// the error state.
func (m *Model[T]) Err() error {
	return m.pager.err
}

// Retry re-fires a failed page load. This is the only path out of the error
// state; window movement alone never re-requests a failed page.
func (m *Model[T]) Retry() tea.Cmd {
	if !m.pager.retry() {
		return nil
	}
	return m.maybeLoadMore()
}

func (m *Model[T]) recompute() {
	m.window = visibleRange(m.heights, m.scroll.offset, m.scroll.viewportHeight, m.cfg.Overscan)
}

// Window returns the inclusive index range of currently mounted items.
func (m *Model[T]) Window() Range {
	return m.window
}

// Rows returns the mounted items with their absolute geometry.
func (m *Model[T]) Rows() []Row[T] {
	return rowsForRange(m.items, m.heights, m.window)
}

func (m *Model[T]) ScrollOffset() int {
	return m.scroll.offset
}

func (m *Model[T]) TotalHeight() int {
	return m.heights.TotalHeight()
}

func (m *Model[T]) NumItems() int {
	return len(m.items)
}

// ItemOffset returns the cumulative height of items before index i.
func (m *Model[T]) ItemOffset(i int) int {
	return m.heights.Offset(i)
}

// View renders the mounted rows and crops the result to the viewport. Rows
// above and below the window were never rendered at all.
func (m *Model[T]) View() string {
	rows := m.Rows()
	if len(rows) == 0 {
		return ""
	}
	var lines []string
	for _, row := range rows {
		lines = append(lines, strings.Split(m.renderFn(row.Item, row.Index, row.Style), "\n")...)
	}
	top := m.scroll.offset - rows[0].Style.Top
	if top < 0 {
		top = 0
	}
	if top > len(lines) {
		top = len(lines)
	}
	bottom := top + m.scroll.viewportHeight
	if bottom > len(lines) {
		bottom = len(lines)
	}
	return strings.Join(lines[top:bottom], "\n")
}
