package vlist

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// LoadState is the pagination state machine for one list instance:
// Idle -> Loading -> {Idle, Error}.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadError
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadError:
		return "error"
	}
	return "unknown"
}

// Loader produces the command that fetches the next page of items. The epoch
// must be echoed back on the resulting LoadedMsg so that resolutions arriving
// after a reset or unmount are discarded.
type Loader func(epoch int) tea.Cmd

// pager coordinates infinite loading. At most one load is in flight per list
// instance. A failed load parks the pager in Error and stays there until an
// explicit retry; window threshold crossings never re-fire the loader on
// their own, so a failing backend is not hammered.
type pager struct {
	state     LoadState
	epoch     int
	err       error
	hasNext   bool
	threshold int
}

// shouldLoad reports whether the window end is within threshold items of the
// last known item and a load may start.
func (p *pager) shouldLoad(end, count int) bool {
	if p.state != LoadIdle || !p.hasNext || count == 0 {
		return false
	}
	return end >= count-1-p.threshold
}

// begin transitions Idle -> Loading and returns the epoch the eventual
// resolution must carry.
func (p *pager) begin() int {
	p.state = LoadLoading
	return p.epoch
}

// resolve applies a load outcome. Returns false for resolutions from a
// previous epoch or an unexpected state; such results are stale and must not
// touch list state.
func (p *pager) resolve(epoch int, err error) bool {
	if epoch != p.epoch || p.state != LoadLoading {
		return false
	}
	if err != nil {
		p.state = LoadError
		p.err = err
		return true
	}
	p.state = LoadIdle
	p.err = nil
	return true
}

// retry clears the Error state so the caller can fire the load again.
func (p *pager) retry() bool {
	if p.state != LoadError {
		return false
	}
	p.state = LoadIdle
	p.err = nil
	return true
}

// invalidate bumps the epoch so any in-flight resolution is discarded. Used
// when the list resets or unmounts while a load is running.
func (p *pager) invalidate() {
	p.epoch++
	p.state = LoadIdle
	p.err = nil
}
