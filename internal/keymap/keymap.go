package keymap

import (
	"github.com/charmbracelet/bubbles/v2/key"

	"github.com/svannberg/rig/internal/vlist"
)

type KeyMap struct {
	Events      key.Binding
	Inspections key.Binding
	Reports     key.Binding
	NextTab     key.Binding
	Filter      key.Binding
	Clear       key.Binding
	Enter       key.Binding
	Retry       key.Binding
	Copy        key.Binding
	Save        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Events: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "events"),
		),
		Inspections: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "inspections"),
		),
		Reports: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "reports"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry failed load"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy visible rows"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save page to file"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "show/hide help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DescriptiveKeyBindings is the full set shown on the help page.
func DescriptiveKeyBindings(km KeyMap) []key.Binding {
	nav := vlist.DefaultKeyMap()
	return []key.Binding{
		km.Events,
		km.Inspections,
		km.Reports,
		km.NextTab,
		nav.Up,
		nav.Down,
		nav.HalfPageUp,
		nav.HalfPageDown,
		nav.PageUp,
		nav.PageDown,
		nav.Top,
		nav.Bottom,
		km.Filter,
		km.Enter,
		km.Clear,
		km.Retry,
		km.Copy,
		km.Save,
		km.Help,
		km.Quit,
	}
}
