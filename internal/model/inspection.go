package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/svannberg/rig/internal/style"
	"github.com/svannberg/rig/internal/util"
)

// Inspection is one completed inspection round on a crane, with the
// inspector's findings. Failed inspections carry at least one finding.
type Inspection struct {
	ID        uuid.UUID
	Crane     string
	Inspector string
	Timestamp time.Time
	Passed    bool
	Findings  []string
}

func (i Inspection) Key() string {
	return i.ID.String()
}

func (i Inspection) When() time.Time {
	return i.Timestamp
}

func (i Inspection) Render(width int, styles style.Styles) string {
	verdict := styles.SeverityLow.Render("PASS")
	if !i.Passed {
		verdict = styles.SeverityHigh.Render("FAIL")
	}
	header := fmt.Sprintf("%s  %s  %s %s",
		styles.RowMeta.Render(i.Timestamp.Format("2006-01-02 15:04")),
		verdict,
		style.CraneName(i.Crane).Render(i.Crane),
		styles.RowTitle.Render(util.Truncate("by "+i.Inspector, width, "…")),
	)
	if len(i.Findings) == 0 {
		return header + "\n" + styles.RowMeta.Render("no findings")
	}
	lines := []string{header}
	for _, finding := range i.Findings {
		lines = append(lines, util.WrapLines("- "+finding, width)...)
	}
	return strings.Join(lines, "\n")
}

func (i Inspection) SearchText() string {
	verdict := "pass"
	if !i.Passed {
		verdict = "fail"
	}
	return strings.Join(append([]string{i.Crane, i.Inspector, verdict}, i.Findings...), " ")
}

func (i Inspection) Equals(other interface{}) bool {
	o, ok := other.(Inspection)
	return ok && i.ID == o.ID
}
