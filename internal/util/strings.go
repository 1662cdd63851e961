package util

import (
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"strings"
)

// Truncate cuts s down to at most width terminal cells, appending the
// continuation indicator when anything was removed. Width accounting is done
// per rune so double-width characters do not overflow the cell budget.
func Truncate(s string, width int, continuation string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	contWidth := runewidth.StringWidth(continuation)
	if contWidth >= width {
		return truncateToWidth(continuation, width)
	}
	return truncateToWidth(s, width-contWidth) + continuation
}

func truncateToWidth(s string, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

// PadToWidth right-pads s with spaces to exactly width cells, truncating first
// if it overflows.
func PadToWidth(s string, width int) string {
	s = Truncate(s, width, "...")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// WrapHeight measures how many lines s occupies when word-wrapped to width.
// This is the item height measurement the list engine is fed once a row's
// real size is known.
func WrapHeight(s string, width int) int {
	if width <= 0 || s == "" {
		return 1
	}
	wrapped := wordwrap.String(s, width)
	return strings.Count(wrapped, "\n") + 1
}

// WrapLines word-wraps s to width and returns the individual lines.
func WrapLines(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}
