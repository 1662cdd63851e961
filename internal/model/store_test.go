package model

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/svannberg/rig/internal/fixtures"
)

func testEvent(name string, at time.Time) Event {
	return Event{
		ID:          uuid.NewMD5(uuid.NameSpaceOID, []byte(name)),
		Crane:       "STS-01",
		Timestamp:   at,
		Title:       name,
		Description: "work order for " + name,
	}
}

func TestStoreOrdersByTimestamp(t *testing.T) {
	s := NewStore[Event]()
	base := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

	// inserted out of order on purpose
	s.Put(testEvent("third", base.Add(2*time.Hour)))
	s.Put(testEvent("first", base))
	s.Put(testEvent("second", base.Add(time.Hour)))

	all := s.All()
	fixtures.Cmp(t, 3, len(all))
	fixtures.Cmp(t, "first", all[0].Title)
	fixtures.Cmp(t, "second", all[1].Title)
	fixtures.Cmp(t, "third", all[2].Title)
}

func TestStoreTimestampTieBreak(t *testing.T) {
	s := NewStore[Event]()
	at := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)
	s.Put(testEvent("b", at))
	s.Put(testEvent("a", at))

	// both survive the tie and order is stable across runs
	fixtures.Cmp(t, 2, s.Len())
	first := s.All()
	again := s.All()
	fixtures.Cmp(t, first[0].ID, again[0].ID)
}

func TestStorePage(t *testing.T) {
	s := NewStore[Event]()
	base := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		s.Put(testEvent(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute)))
	}

	page, err := s.Page(3, 4)
	fixtures.Cmp(t, nil, err)
	fixtures.Cmp(t, 4, len(page))
	fixtures.Cmp(t, "d", page[0].Title)
	fixtures.Cmp(t, "g", page[3].Title)

	// a short final page
	page, _ = s.Page(8, 4)
	fixtures.Cmp(t, 2, len(page))

	// past the end and degenerate arguments
	page, _ = s.Page(100, 4)
	fixtures.Cmp(t, 0, len(page))
	page, _ = s.Page(-1, 4)
	fixtures.Cmp(t, 0, len(page))
	page, _ = s.Page(0, 0)
	fixtures.Cmp(t, 0, len(page))
}

func TestFilteredSource(t *testing.T) {
	s := NewStore[Event]()
	base := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)
	e1 := testEvent("hoist brake wear", base)
	e2 := testEvent("trolley alignment", base.Add(time.Minute))
	s.Put(e1)
	s.Put(e2)

	f := NewFiltered[Event](s, "HOIST")
	fixtures.Cmp(t, 1, f.Len())
	page, err := f.Page(0, 10)
	fixtures.Cmp(t, nil, err)
	fixtures.Cmp(t, 1, len(page))
	fixtures.Cmp(t, e1.ID, page[0].ID)

	// no matches is an empty source, not an error
	none := NewFiltered[Event](s, "gantry")
	fixtures.Cmp(t, 0, none.Len())
}
