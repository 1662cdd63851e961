package internal

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/svannberg/rig/internal/constants"
	"github.com/svannberg/rig/internal/dev"
	"github.com/svannberg/rig/internal/mock"
	"github.com/svannberg/rig/internal/model"
	"github.com/svannberg/rig/internal/page"
	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/vlist"
)

func initializedModel(m Model) (Model, tea.Cmd) {
	dev.Debug("initializing")
	defer dev.Debug("done initializing")
	dev.Debug("------------")

	m.styles = style.DefaultStyles()
	m.memory = vlist.NewScrollMemory()

	m = initializePages(m)

	var cmd tea.Cmd
	m.pages[m.focusedPageType], cmd = m.pages[m.focusedPageType].Mount()
	return m, cmd
}

func initializePages(m Model) Model {
	m.focusedPageType = page.EventsPageType

	engine := vlist.Config{
		ItemHeightEstimate: m.config.ItemHeightEstimate,
		Overscan:           m.config.Overscan,
		LoadThreshold:      m.config.LoadThreshold,
		ScrollThrottle:     constants.ScrollThrottleInterval,
	}
	listCfg := page.ListConfig{
		Engine:   engine,
		Profile:  vlist.Profile{Threshold: m.config.VirtualizeThreshold},
		PageSize: m.config.PageSize,
		Latency:  constants.MockLoadLatency,
		Memory:   m.memory,
	}

	m.topBarHeight = constants.TopBarHeight
	contentHeight := m.height - m.topBarHeight
	width := m.width

	m.pages = map[page.Type]page.GenericPage{
		page.EventsPageType: page.NewEventsPage(
			width, contentHeight, m.styles,
			source(mock.EventStore(m.config.Seed, m.config.Items), m.config.FailEvery),
			listCfg,
		),
		page.InspectionsPageType: page.NewInspectionsPage(
			width, contentHeight, m.styles,
			source(mock.InspectionStore(m.config.Seed, m.config.Items), m.config.FailEvery),
			listCfg,
		),
		page.ReportsPageType: page.NewReportsPage(
			width, contentHeight, m.styles,
			source(mock.ReportStore(m.config.Seed, m.config.Items/5), m.config.FailEvery),
			listCfg,
		),
	}

	m.initialized = true
	return m
}

// source optionally wraps a store with the failure injector so the load
// error and retry flows are demonstrable.
func source[T model.Item](store *model.Store[T], failEvery int) model.Source[T] {
	if failEvery > 0 {
		return &mock.Flaky[T]{Source: store, Every: failEvery}
	}
	return store
}
