package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/util"
)

// Report is a periodic maintenance summary for one crane.
type Report struct {
	ID          uuid.UUID
	Crane       string
	Period      string
	Timestamp   time.Time
	Summary     string
	ActionItems int
}

func (r Report) Key() string {
	return r.ID.String()
}

func (r Report) When() time.Time {
	return r.Timestamp
}

func (r Report) Render(width int, styles style.Styles) string {
	header := fmt.Sprintf("%s  %s %s  %s",
		styles.RowMeta.Render(r.Timestamp.Format("2006-01-02")),
		style.CraneName(r.Crane).Render(r.Crane),
		styles.RowTitle.Render(util.Truncate(r.Period, width, "…")),
		styles.RowMeta.Render(fmt.Sprintf("%d action items", r.ActionItems)),
	)
	body := strings.Join(util.WrapLines(r.Summary, width), "\n")
	return header + "\n" + body
}

func (r Report) SearchText() string {
	return strings.Join([]string{r.Crane, r.Period, r.Summary}, " ")
}

func (r Report) Equals(other interface{}) bool {
	o, ok := other.(Report)
	return ok && r.ID == o.ID
}
