package page

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/svannberg/rig/internal/fixtures"
	"github.com/svannberg/rig/internal/mock"
	"github.com/svannberg/rig/internal/model"
	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/vlist"
)

func testListConfig() ListConfig {
	return ListConfig{
		Engine: vlist.Config{
			ItemHeightEstimate: 2,
			Overscan:           3,
			LoadThreshold:      5,
		},
		Profile:  vlist.DefaultProfile,
		PageSize: 50,
		Memory:   vlist.NewScrollMemory(),
	}
}

func newEventsListPage(t *testing.T, items int) ListPage[model.Event] {
	t.Helper()
	src := mock.EventStore(61, items)
	return NewListPage("events", 80, 20, style.DefaultStyles(), src, testListConfig())
}

func TestListPageInitialFill(t *testing.T) {
	p := newEventsListPage(t, 500)

	// virtualized: only the first page is loaded up front
	fixtures.Cmp(t, false, p.plain)
	fixtures.Cmp(t, 50, p.list.NumItems())
	fixtures.Cmp(t, 50, p.ctx.offset)
}

func TestListPagePlainBelowThreshold(t *testing.T) {
	p := newEventsListPage(t, 20)

	// small list: everything loaded, no infinite loader
	fixtures.Cmp(t, true, p.plain)
	fixtures.Cmp(t, 20, p.list.NumItems())
}

func TestListPageMeasuresVisibleRows(t *testing.T) {
	p := newEventsListPage(t, 500)

	for _, row := range p.list.Rows() {
		expected := lipgloss.Height(row.Item.Render(80, p.ctx.styles))
		fixtures.Cmp(t, expected, row.Style.Height)
	}
}

func TestListPageStatusLine(t *testing.T) {
	p := newEventsListPage(t, 500)
	status := p.statusLine()
	if !strings.Contains(status, "50/500 events") {
		t.Errorf("unexpected status line %q", status)
	}
}

func TestListPageApplyFilter(t *testing.T) {
	p := newEventsListPage(t, 500)

	filtered := p.ApplyFilter("hoist").(ListPage[model.Event])
	if filtered.list.NumItems() == 0 {
		t.Fatal("expected some events matching 'hoist'")
	}
	if filtered.list.NumItems() == 500 {
		t.Fatal("filter did not narrow the list")
	}

	// discarding the filter goes back to the full source
	restored := filtered.ApplyFilter("").(ListPage[model.Event])
	fixtures.Cmp(t, 500, restored.ctx.src.Len())
}

func TestListPageResize(t *testing.T) {
	p := newEventsListPage(t, 500)
	resized := p.WithDimensions(40, 30).(ListPage[model.Event])
	fixtures.Cmp(t, 40, resized.ctx.width)

	// rows are re-measured at the narrower width
	for _, row := range resized.list.Rows() {
		expected := lipgloss.Height(row.Item.Render(40, resized.ctx.styles))
		fixtures.Cmp(t, expected, row.Style.Height)
	}
}
