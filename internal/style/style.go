package style

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/svannberg/rig/internal/color"
)

// Styles is the set of lipgloss styles shared across pages. A single value is
// built at startup and passed down so every component renders consistently.
type Styles struct {
	Regular     lipgloss.Style
	Bold        lipgloss.Style
	Inverse     lipgloss.Style
	TopBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	SelectedRow lipgloss.Style
	RowTitle    lipgloss.Style
	RowMeta     lipgloss.Style
	Footer      lipgloss.Style
	Toast       lipgloss.Style
	ToastError  lipgloss.Style
	Loading     lipgloss.Style
	FilterLabel lipgloss.Style
	KeyHelp     lipgloss.Style

	SeverityLow      lipgloss.Style
	SeverityMedium   lipgloss.Style
	SeverityHigh     lipgloss.Style
	SeverityCritical lipgloss.Style
}

func DefaultStyles() Styles {
	regular := lipgloss.NewStyle()
	bold := regular.Bold(true)
	inverse := regular.Reverse(true)
	return Styles{
		Regular:     regular,
		Bold:        bold,
		Inverse:     inverse,
		TopBar:      bold,
		TabActive:   inverse.Bold(true),
		TabInactive: regular.Faint(true),
		SelectedRow: inverse,
		RowTitle:    bold,
		RowMeta:     regular.Faint(true),
		Footer:      bold,
		Toast:       regular.Foreground(lipgloss.Color("#3FE34B")),
		ToastError:  bold.Foreground(lipgloss.Color("#FD2C4C")),
		Loading:     regular.Faint(true).Italic(true),
		FilterLabel: inverse,
		KeyHelp:     bold.Underline(true),

		SeverityLow:      regular.Foreground(lipgloss.Color("#42952E")),
		SeverityMedium:   regular.Foreground(lipgloss.Color("#FAF81C")),
		SeverityHigh:     regular.Foreground(lipgloss.Color("#FE7A00")),
		SeverityCritical: bold.Foreground(lipgloss.Color("#FD2C4C")),
	}
}

// CraneName tints a crane name with its stable accent color, so the same
// crane looks the same on every page.
func CraneName(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color.CraneColor(name))
}

// Severity returns the style for a 0-3 severity rank, saturating at critical.
func (s Styles) Severity(rank int) lipgloss.Style {
	switch {
	case rank <= 0:
		return s.SeverityLow
	case rank == 1:
		return s.SeverityMedium
	case rank == 2:
		return s.SeverityHigh
	default:
		return s.SeverityCritical
	}
}
