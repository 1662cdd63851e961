package mock

import (
	"testing"

	"github.com/svannberg/rig/internal/fixtures"
	"github.com/svannberg/rig/internal/model"
)

func TestEventsDeterministic(t *testing.T) {
	a := Events(61, 20)
	b := Events(61, 20)
	fixtures.Cmp(t, a, b)

	other := Events(62, 20)
	if a[0].ID == other[0].ID {
		t.Error("different seeds produced the same event identity")
	}
}

func TestEventsShape(t *testing.T) {
	events := Events(61, 50)
	fixtures.Cmp(t, 50, len(events))
	for _, e := range events {
		if e.Crane == "" || e.Title == "" || e.Description == "" {
			t.Errorf("incomplete event %+v", e)
		}
		if e.Severity < 0 || e.Severity > 3 {
			t.Errorf("severity %d out of range", e.Severity)
		}
	}
}

func TestInspectionsFindingsMatchVerdict(t *testing.T) {
	var sawFail bool
	for _, i := range Inspections(61, 100) {
		if i.Passed && len(i.Findings) > 0 {
			t.Errorf("passed inspection %s has findings", i.ID)
		}
		if !i.Passed {
			sawFail = true
			if len(i.Findings) == 0 {
				t.Errorf("failed inspection %s has no findings", i.ID)
			}
		}
	}
	if !sawFail {
		t.Error("expected at least one failed inspection in 100")
	}
}

func TestStoresAreOrdered(t *testing.T) {
	s := EventStore(61, 100)
	fixtures.Cmp(t, 100, s.Len())
	all := s.All()
	for i := 1; i < len(all); i++ {
		if all[i].When().Before(all[i-1].When()) {
			t.Errorf("store out of order at %d", i)
		}
	}
}

func TestFlakyFailsEveryNth(t *testing.T) {
	f := &Flaky[model.Event]{Source: EventStore(61, 10), Every: 3}
	var errs int
	for i := 0; i < 9; i++ {
		if _, err := f.Page(0, 1); err != nil {
			errs++
		}
	}
	fixtures.Cmp(t, 3, errs)
	fixtures.Cmp(t, 10, f.Len())
}
