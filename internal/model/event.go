package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/util"
)

// Event is one maintenance event on a crane: a fault, a repair, a scheduled
// service. Severity ranks 0 (routine) through 3 (critical).
type Event struct {
	ID          uuid.UUID
	Crane       string
	Timestamp   time.Time
	Severity    int
	Title       string
	Description string
}

func (e Event) Key() string {
	return e.ID.String()
}

func (e Event) When() time.Time {
	return e.Timestamp
}

func (e Event) Render(width int, styles style.Styles) string {
	header := fmt.Sprintf("%s  %s  %s %s",
		styles.RowMeta.Render(e.Timestamp.Format("2006-01-02 15:04")),
		styles.Severity(e.Severity).Render(severityLabel(e.Severity)),
		style.CraneName(e.Crane).Render(e.Crane),
		styles.RowTitle.Render(util.Truncate(e.Title, width, "…")),
	)
	body := strings.Join(util.WrapLines(e.Description, width), "\n")
	return header + "\n" + body
}

func (e Event) SearchText() string {
	return strings.Join([]string{e.Crane, severityLabel(e.Severity), e.Title, e.Description}, " ")
}

func (e Event) Equals(other interface{}) bool {
	o, ok := other.(Event)
	return ok && e.ID == o.ID
}

func severityLabel(rank int) string {
	switch {
	case rank <= 0:
		return "LOW "
	case rank == 1:
		return "MED "
	case rank == 2:
		return "HIGH"
	default:
		return "CRIT"
	}
}
