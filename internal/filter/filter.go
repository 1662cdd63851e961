package filter

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/svannberg/rig/internal/dev"
	"github.com/svannberg/rig/internal/style"
)

// Model is the text filter prompt shown above a list. Editing and applied
// state are distinct: the list only refilters when the edit is committed.
type Model struct {
	textinput textinput.Model
	editing   bool
	applied   string
}

func New() Model {
	ti := textinput.New()
	ti.Prompt = ""
	return Model{textinput: ti}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	dev.DebugMsg("Filter", msg)
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

func (m Model) View(styles style.Styles) string {
	label := styles.FilterLabel.Render("filter: ")
	if m.editing {
		return label + m.textinput.View()
	}
	if m.applied != "" {
		return label + m.applied
	}
	return ""
}

func (m Model) StartEditing() (Model, tea.Cmd) {
	m.editing = true
	m.textinput.SetValue(m.applied)
	return m, m.textinput.Focus()
}

// Apply commits the edited value; the caller refilters and clears the list's
// scroll memory key, since the applied item set has a new identity.
func (m Model) Apply() Model {
	m.applied = strings.TrimSpace(m.textinput.Value())
	m.editing = false
	m.textinput.Blur()
	return m
}

// Discard drops both the edit in progress and any applied filter.
func (m Model) Discard() Model {
	m.applied = ""
	m.editing = false
	m.textinput.SetValue("")
	m.textinput.Blur()
	return m
}

func (m Model) Editing() bool {
	return m.editing
}

func (m Model) Applied() string {
	return m.applied
}

// Matches is the filter predicate: case-insensitive substring match.
func (m Model) Matches(s string) bool {
	if m.applied == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(m.applied))
}
