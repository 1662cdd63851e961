package page

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/svannberg/rig/internal/command"
	"github.com/svannberg/rig/internal/dev"
	"github.com/svannberg/rig/internal/message"
	"github.com/svannberg/rig/internal/model"
	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/vlist"
)

// renderCtx is shared by pointer between the page and the closures handed to
// the list engine, so dimension and filter changes stay visible to them even
// though pages are copied by value through the update loop.
type renderCtx[T model.Item] struct {
	width  int
	styles style.Styles

	name     string
	base     model.Source[T]
	src      model.Source[T]
	offset   int
	pageSize int
	latency  time.Duration
}

// ListPage is one dashboard tab: a windowed list over a paged item source.
// Rendered row heights vary with item content and terminal width, so each
// visible row's real height is measured after render and fed back to the
// engine.
type ListPage[T model.Item] struct {
	name    string
	width   int
	height  int
	ctx     *renderCtx[T]
	list    vlist.Model[T]
	plain   bool
	loading string
}

// ListConfig carries the knobs a list page passes through to the engine.
type ListConfig struct {
	Engine   vlist.Config
	Profile  vlist.Profile
	PageSize int
	Latency  time.Duration
	Memory   *vlist.ScrollMemory
}

func NewListPage[T model.Item](name string, width, height int, styles style.Styles, src model.Source[T], cfg ListConfig) ListPage[T] {
	ctx := &renderCtx[T]{
		width:    width,
		styles:   styles,
		name:     name,
		base:     src,
		src:      src,
		pageSize: cfg.PageSize,
		latency:  cfg.Latency,
	}

	keyFn := func(item T, _ int) string { return item.Key() }
	renderFn := func(item T, _ int, _ vlist.Style) string {
		return item.Render(ctx.width, ctx.styles)
	}
	loader := func(epoch int) tea.Cmd {
		return command.LoadPageCmd(ctx.name, epoch, ctx.src, ctx.offset, ctx.pageSize, ctx.latency)
	}

	engine := cfg.Engine
	engine.ContainerHeight = contentHeight(height)

	plain := !vlist.ShouldVirtualize(src.Len(), cfg.Profile)
	list := vlist.New(keyFn, renderFn,
		vlist.WithConfig[T](engine),
		vlist.WithMemory[T](name, cfg.Memory),
		vlist.WithLoader[T](loader, !plain),
	)

	p := ListPage[T]{
		name:   name,
		width:  width,
		height: height,
		ctx:    ctx,
		list:   list,
		plain:  plain,
	}
	p.fill()
	return p
}

// fill seeds the list from the source: everything at once for small sets,
// the first page for virtualized ones.
func (p *ListPage[T]) fill() {
	limit := p.ctx.pageSize
	if p.plain {
		limit = p.ctx.src.Len()
	}
	items, err := p.ctx.src.Page(0, limit)
	if err != nil {
		// in-memory sources only fail when wrapped with an injector; treat
		// the initial page like a failed load-more
		dev.Debug(fmt.Sprintf("initial %s page failed: %v", p.name, err))
		items = nil
	}
	p.list.SetItems(items)
	p.list.SetHasNextPage(len(items) < p.ctx.src.Len())
	p.ctx.offset = len(items)
	p.measureVisible()
}

func (p ListPage[T]) Update(msg tea.Msg) (GenericPage, tea.Cmd) {
	dev.DebugMsg("ListPage "+p.name, msg)
	before := p.list.LoadState()
	cmd := p.list.Update(msg)
	p.ctx.offset = p.list.NumItems()
	p.measureVisible()

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if before != vlist.LoadError && p.list.LoadState() == vlist.LoadError {
		err := p.list.Err()
		cmds = append(cmds, func() tea.Msg { return message.ErrMsg{Err: err} })
	}
	return p, tea.Batch(cmds...)
}

// measureVisible records the real rendered height of every in-window row.
// Estimates elsewhere stay untouched; the engine ignores measurements that
// match what it already has.
func (p *ListPage[T]) measureVisible() {
	for _, row := range p.list.Rows() {
		h := lipgloss.Height(row.Item.Render(p.ctx.width, p.ctx.styles))
		p.list.RecordHeight(row.Index, h)
	}
}

func (p ListPage[T]) View() string {
	body := p.list.View()
	return lipgloss.JoinVertical(lipgloss.Left, body, p.statusLine())
}

func (p ListPage[T]) statusLine() string {
	styles := p.ctx.styles
	status := fmt.Sprintf("%d/%d %s", p.list.NumItems(), p.ctx.src.Len(), p.name)
	switch p.list.LoadState() {
	case vlist.LoadLoading:
		status += "  " + styles.Loading.Render("loading more...")
	case vlist.LoadError:
		status += "  " + styles.ToastError.Render("load failed (r to retry)")
	}
	return styles.Footer.Render(status)
}

func (p ListPage[T]) Name() string {
	return p.name
}

// ContentForFile renders the visible rows with styling stripped for export.
func (p ListPage[T]) ContentForFile() []string {
	var lines []string
	for _, row := range p.list.Rows() {
		content := ansi.Strip(row.Item.Render(p.ctx.width, p.ctx.styles))
		lines = append(lines, strings.Split(content, "\n")...)
	}
	return lines
}

func (p ListPage[T]) WithDimensions(width, height int) GenericPage {
	p.width = width
	p.height = height
	p.ctx.width = width
	p.list.SetContainerHeight(contentHeight(height))
	p.measureVisible()
	return p
}

func (p ListPage[T]) Mount() (GenericPage, tea.Cmd) {
	cmd := p.list.Mount()
	p.measureVisible()
	return p, cmd
}

func (p ListPage[T]) Unmount() GenericPage {
	p.list.Unmount()
	return p
}

// ApplyFilter swaps the source for a filtered view of the same store and
// reloads from the top. The remembered scroll position belongs to the old
// item set, so it is cleared rather than restored into the wrong rows.
func (p ListPage[T]) ApplyFilter(text string) GenericPage {
	if text == "" {
		p.ctx.src = p.ctx.base
	} else {
		p.ctx.src = model.NewFiltered(p.ctx.base, text)
	}
	p.list.Reset()
	p.list.ClearMemory()
	p.fill()
	return p
}

func (p ListPage[T]) Retry() (GenericPage, tea.Cmd) {
	return p, p.list.Retry()
}

func (p ListPage[T]) Loading() bool {
	return p.list.IsLoadingMore()
}

func (p ListPage[T]) LoadErr() error {
	return p.list.Err()
}

// contentHeight reserves the status line at the bottom of the page.
func contentHeight(pageHeight int) int {
	if pageHeight <= 1 {
		return 0
	}
	return pageHeight - 1
}
