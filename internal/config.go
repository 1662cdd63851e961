package internal

import (
	"github.com/svannberg/rig/internal/keymap"
)

type Config struct {
	KeyMap              keymap.KeyMap
	PageSize            int
	Overscan            int
	ItemHeightEstimate  int
	LoadThreshold       int
	VirtualizeThreshold int
	Seed                int64
	Items               int
	FailEvery           int
	Version             string
}
