package page

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

type GenericPage interface {
	Update(msg tea.Msg) (GenericPage, tea.Cmd)
	View() string
	Name() string
	ContentForFile() []string
	WithDimensions(width, height int) GenericPage
	Mount() (GenericPage, tea.Cmd)
	Unmount() GenericPage
	ApplyFilter(text string) GenericPage
	Retry() (GenericPage, tea.Cmd)
	Loading() bool
	LoadErr() error
}

type Type int

const (
	EventsPageType Type = iota
	InspectionsPageType
	ReportsPageType
)

func (t Type) String() string {
	switch t {
	case EventsPageType:
		return "events"
	case InspectionsPageType:
		return "inspections"
	case ReportsPageType:
		return "reports"
	}
	return "unknown"
}
