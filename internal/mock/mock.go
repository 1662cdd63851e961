package mock

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/svannberg/rig/internal/model"
)

// Mock fleet data. Everything is derived from the seed so a given seed always
// produces the same fleet, which keeps reported issues reproducible.

var cranes = []string{
	"STS-01", "STS-02", "STS-03", "RTG-11", "RTG-12", "RTG-14",
	"RMG-21", "RMG-22", "MHC-31", "MHC-32",
}

var inspectors = []string{
	"J. Okafor", "M. Lindqvist", "A. Tanaka", "R. Delgado", "P. Kowalczyk",
}

var eventTitles = []string{
	"hoist brake wear above limit",
	"trolley rail alignment check",
	"spreader twistlock replacement",
	"gantry drive oil change",
	"festoon cable inspection",
	"emergency stop circuit test",
	"boom hinge lubrication",
	"wind anemometer recalibration",
}

var findings = []string{
	"corrosion on boom tip section, surface treatment scheduled",
	"hydraulic hose abrasion near trolley, replaced on the spot",
	"slack in anti-sway ropes beyond tolerance",
	"walkway grating fastener missing at mid-span",
	"headblock sheave groove wear approaching limit",
	"limit switch response delayed on hoist upper stop",
}

var summaries = []string{
	"Availability held above target. Two unplanned stops, both resolved within the shift.",
	"Recurring trolley vibration traced to rail joint wear; grinding booked for the next window.",
	"Hoist rope measurements within limits on all units. One spreader swapped for refurbishment.",
	"Preventive plan compliance at full coverage. Backlog reduced by a third against last period.",
}

// id derives a stable identity from a label, so the same seed and index
// always name the same record.
func id(label string) uuid.UUID {
	return uuid.NewMD5(uuid.NameSpaceOID, []byte(label))
}

func Events(seed int64, n int) []model.Event {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)
	events := make([]model.Event, n)
	for i := range events {
		title := eventTitles[rng.Intn(len(eventTitles))]
		events[i] = model.Event{
			ID:        id(fmt.Sprintf("event-%d-%d", seed, i)),
			Crane:     cranes[rng.Intn(len(cranes))],
			Timestamp: base.Add(time.Duration(i) * 37 * time.Minute),
			Severity:  rng.Intn(4),
			Title:     title,
			Description: fmt.Sprintf(
				"Work order %04d: %s. Logged by shift supervisor, follow-up %s.",
				1000+i, title, []string{"not required", "pending parts", "scheduled"}[rng.Intn(3)],
			),
		}
	}
	return events
}

func Inspections(seed int64, n int) []model.Inspection {
	rng := rand.New(rand.NewSource(seed + 1))
	base := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	inspections := make([]model.Inspection, n)
	for i := range inspections {
		passed := rng.Intn(4) != 0
		var found []string
		if !passed {
			for j := 0; j <= rng.Intn(3); j++ {
				found = append(found, findings[rng.Intn(len(findings))])
			}
		}
		inspections[i] = model.Inspection{
			ID:        id(fmt.Sprintf("inspection-%d-%d", seed, i)),
			Crane:     cranes[rng.Intn(len(cranes))],
			Inspector: inspectors[rng.Intn(len(inspectors))],
			Timestamp: base.Add(time.Duration(i) * 3 * time.Hour),
			Passed:    passed,
			Findings:  found,
		}
	}
	return inspections
}

func Reports(seed int64, n int) []model.Report {
	rng := rand.New(rand.NewSource(seed + 2))
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	reports := make([]model.Report, n)
	for i := range reports {
		reports[i] = model.Report{
			ID:          id(fmt.Sprintf("report-%d-%d", seed, i)),
			Crane:       cranes[i%len(cranes)],
			Period:      fmt.Sprintf("week %d", 2+i/len(cranes)),
			Timestamp:   base.AddDate(0, 0, 7*(i/len(cranes))),
			Summary:     summaries[rng.Intn(len(summaries))],
			ActionItems: rng.Intn(6),
		}
	}
	return reports
}

func EventStore(seed int64, n int) *model.Store[model.Event] {
	s := model.NewStore[model.Event]()
	for _, e := range Events(seed, n) {
		s.Put(e)
	}
	return s
}

func InspectionStore(seed int64, n int) *model.Store[model.Inspection] {
	s := model.NewStore[model.Inspection]()
	for _, i := range Inspections(seed, n) {
		s.Put(i)
	}
	return s
}

func ReportStore(seed int64, n int) *model.Store[model.Report] {
	s := model.NewStore[model.Report]()
	for _, r := range Reports(seed, n) {
		s.Put(r)
	}
	return s
}
