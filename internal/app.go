package internal

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/svannberg/rig/internal/command"
	"github.com/svannberg/rig/internal/constants"
	"github.com/svannberg/rig/internal/dev"
	"github.com/svannberg/rig/internal/fileio"
	"github.com/svannberg/rig/internal/filter"
	"github.com/svannberg/rig/internal/help"
	"github.com/svannberg/rig/internal/keymap"
	"github.com/svannberg/rig/internal/message"
	"github.com/svannberg/rig/internal/page"
	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/toast"
	"github.com/svannberg/rig/internal/vlist"
)

type Model struct {
	config          Config
	keyMap          keymap.KeyMap
	styles          style.Styles
	width, height   int
	initialized     bool
	memory          *vlist.ScrollMemory
	pages           map[page.Type]page.GenericPage
	focusedPageType page.Type
	filter          filter.Model
	toast           toast.Model
	helpShown       bool
	err             error
	topBarHeight    int // assumed constant
}

func InitialModel(c Config) Model {
	return Model{
		config: c,
		keyMap: c.KeyMap,
		filter: filter.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugMsg("App", msg)
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case message.ErrMsg:
		m.err = msg.Err
		return m.showToast(msg.Error(), true)

	// WindowSizeMsg arrives once on startup, then again on every resize
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.initialized {
			m, cmd = initializedModel(m)
			cmds = append(cmds, cmd)
		}
		m = m.resizePages()
		return m, tea.Batch(cmds...)

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case command.ContentCopiedToClipboardMsg:
		if msg.Err != nil {
			return m.showToast("copy failed: "+msg.Err.Error(), true)
		}
		return m.showToast("copied visible rows to clipboard", false)

	case fileio.SaveCompleteMsg:
		if msg.ErrMessage != "" {
			return m.showToast(msg.ErrMessage, true)
		}
		return m.showToast(msg.SuccessMessage, false)
	}

	// everything else is the focused page's business, e.g. page loads and
	// scroll throttle flushes
	if m.initialized {
		m.pages[m.focusedPageType], cmd = m.pages[m.focusedPageType].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.initialized {
		return m, nil
	}

	if m.helpShown {
		m.helpShown = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keyMap.Quit) && !m.filter.Editing() {
		return m, tea.Quit
	}

	if m.filter.Editing() {
		return m.handleFilterKeyMsg(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.helpShown = true
		return m, nil

	case key.Matches(msg, m.keyMap.Events):
		return m.switchPage(page.EventsPageType)
	case key.Matches(msg, m.keyMap.Inspections):
		return m.switchPage(page.InspectionsPageType)
	case key.Matches(msg, m.keyMap.Reports):
		return m.switchPage(page.ReportsPageType)
	case key.Matches(msg, m.keyMap.NextTab):
		next := (m.focusedPageType + 1) % page.Type(len(m.pages))
		return m.switchPage(next)

	case key.Matches(msg, m.keyMap.Filter):
		var cmd tea.Cmd
		m.filter, cmd = m.filter.StartEditing()
		return m, cmd

	case key.Matches(msg, m.keyMap.Clear):
		if m.filter.Applied() != "" {
			m.filter = m.filter.Discard()
			m.pages[m.focusedPageType] = m.pages[m.focusedPageType].ApplyFilter("")
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Retry):
		var cmd tea.Cmd
		m.pages[m.focusedPageType], cmd = m.pages[m.focusedPageType].Retry()
		return m, cmd

	case key.Matches(msg, m.keyMap.Copy):
		content := strings.Join(m.pages[m.focusedPageType].ContentForFile(), "\n")
		return m, command.CopyContentToClipboardCmd(content)

	case key.Matches(msg, m.keyMap.Save):
		focused := m.pages[m.focusedPageType]
		return m, fileio.SaveCmd(focused.Name(), focused.ContentForFile())
	}

	var cmd tea.Cmd
	m.pages[m.focusedPageType], cmd = m.pages[m.focusedPageType].Update(msg)
	return m, cmd
}

func (m Model) handleFilterKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Enter):
		m.filter = m.filter.Apply()
		m.pages[m.focusedPageType] = m.pages[m.focusedPageType].ApplyFilter(m.filter.Applied())
		return m, nil
	case key.Matches(msg, m.keyMap.Clear):
		m.filter = m.filter.Discard()
		m.pages[m.focusedPageType] = m.pages[m.focusedPageType].ApplyFilter("")
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// switchPage moves focus between tabs. The outgoing page saves its scroll
// position, the incoming one restores its own.
func (m Model) switchPage(t page.Type) (Model, tea.Cmd) {
	if t == m.focusedPageType {
		return m, nil
	}
	m.pages[m.focusedPageType] = m.pages[m.focusedPageType].Unmount()
	m.focusedPageType = t

	var cmd tea.Cmd
	m.pages[t], cmd = m.pages[t].Mount()
	return m, cmd
}

func (m Model) showToast(text string, isErr bool) (Model, tea.Cmd) {
	m.toast = toast.New(text)
	if isErr {
		m.toast.MessageStyle = m.styles.ToastError
	} else {
		m.toast.MessageStyle = m.styles.Toast
	}
	id := m.toast.ID
	return m, tea.Tick(constants.ToastTimeout, func(time.Time) tea.Msg { return toast.TimeoutMsg{ID: id} })
}

func (m Model) resizePages() Model {
	contentHeight := m.height - m.topBarHeight
	for t, p := range m.pages {
		m.pages[t] = p.WithDimensions(m.width, contentHeight)
	}
	return m
}

func (m Model) View() string {
	if !m.initialized {
		return ""
	}
	if m.helpShown {
		return help.MakeHelp(m.keyMap, m.styles.Inverse)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.topBar(),
		m.pages[m.focusedPageType].View(),
	)
}

func (m Model) topBar() string {
	var tabs []string
	for _, t := range []page.Type{page.EventsPageType, page.InspectionsPageType, page.ReportsPageType} {
		tab := " " + t.String() + " "
		if t == m.focusedPageType {
			tabs = append(tabs, m.styles.TabActive.Render(tab))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(tab))
		}
	}
	first := m.styles.TopBar.Render("rig ") + strings.Join(tabs, " ")

	second := m.filter.View(m.styles)
	if t := m.toast.View(); t != "" {
		if second != "" {
			second += "  "
		}
		second += t
	}
	return first + "\n" + second
}
