package filter

import (
	"testing"

	"github.com/svannberg/rig/internal/fixtures"
)

func TestFilterApplyDiscard(t *testing.T) {
	m := New()
	fixtures.Cmp(t, false, m.Editing())
	fixtures.Cmp(t, "", m.Applied())

	m, _ = m.StartEditing()
	fixtures.Cmp(t, true, m.Editing())

	m.textinput.SetValue("  hoist  ")
	m = m.Apply()
	fixtures.Cmp(t, false, m.Editing())
	fixtures.Cmp(t, "hoist", m.Applied())

	m = m.Discard()
	fixtures.Cmp(t, "", m.Applied())
}

func TestFilterEditRestartsFromApplied(t *testing.T) {
	m := New()
	m, _ = m.StartEditing()
	m.textinput.SetValue("sts-01")
	m = m.Apply()

	m, _ = m.StartEditing()
	fixtures.Cmp(t, "sts-01", m.textinput.Value())
}

func TestFilterMatches(t *testing.T) {
	m := New()
	m, _ = m.StartEditing()
	m.textinput.SetValue("Hoist")
	m = m.Apply()

	fixtures.Cmp(t, true, m.Matches("HOIST brake wear"))
	fixtures.Cmp(t, false, m.Matches("trolley alignment"))

	empty := New()
	fixtures.Cmp(t, true, empty.Matches("anything"))
}
