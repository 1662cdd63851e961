package vlist

import "time"

const (
	DefaultItemHeightEstimate  = 1
	DefaultOverscan            = 3
	DefaultLoadThreshold       = 5
	DefaultVirtualizeThreshold = 100
	DefaultScrollThrottle      = 16 * time.Millisecond
)

// Config holds the recognized virtualization options.
type Config struct {
	// ContainerHeight is the viewport height in height units.
	ContainerHeight int

	// ItemHeightEstimate is the height assumed for an item before it has
	// been measured.
	ItemHeightEstimate int

	// Overscan is the number of extra items rendered beyond each viewport
	// edge to mask scroll latency.
	Overscan int

	// LoadThreshold is how close, in items, the window end gets to the last
	// known item before the next page is requested.
	LoadThreshold int

	// ScrollThrottle bounds how often scroll input recomputes the window.
	ScrollThrottle time.Duration
}

func DefaultConfig() Config {
	return Config{
		ItemHeightEstimate: DefaultItemHeightEstimate,
		Overscan:           DefaultOverscan,
		LoadThreshold:      DefaultLoadThreshold,
		ScrollThrottle:     DefaultScrollThrottle,
	}
}

// Profile is the item count threshold above which windowed rendering replaces
// a plain fully rendered list.
type Profile struct {
	Threshold int
}

var DefaultProfile = Profile{Threshold: DefaultVirtualizeThreshold}

// ShouldVirtualize selects between the windowed engine and a plain list:
// below the profile threshold, fully rendering every item is cheaper than the
// bookkeeping.
func ShouldVirtualize(itemCount int, profile Profile) bool {
	threshold := profile.Threshold
	if threshold <= 0 {
		threshold = DefaultVirtualizeThreshold
	}
	return itemCount > threshold
}

// Option configures a Model at construction time.
type Option[T any] func(*Model[T])

func WithConfig[T any](cfg Config) Option[T] {
	return func(m *Model[T]) {
		if cfg.ItemHeightEstimate <= 0 {
			cfg.ItemHeightEstimate = DefaultItemHeightEstimate
		}
		if cfg.Overscan < 0 {
			cfg.Overscan = 0
		}
		if cfg.LoadThreshold < 0 {
			cfg.LoadThreshold = 0
		}
		if cfg.ScrollThrottle <= 0 {
			cfg.ScrollThrottle = DefaultScrollThrottle
		}
		m.cfg = cfg
	}
}

func WithContainerHeight[T any](height int) Option[T] {
	return func(m *Model[T]) {
		m.cfg.ContainerHeight = height
	}
}

func WithItemHeightEstimate[T any](estimate int) Option[T] {
	return func(m *Model[T]) {
		if estimate > 0 {
			m.cfg.ItemHeightEstimate = estimate
		}
	}
}

func WithOverscan[T any](overscan int) Option[T] {
	return func(m *Model[T]) {
		if overscan >= 0 {
			m.cfg.Overscan = overscan
		}
	}
}

func WithLoadThreshold[T any](threshold int) Option[T] {
	return func(m *Model[T]) {
		if threshold >= 0 {
			m.cfg.LoadThreshold = threshold
		}
	}
}

func WithScrollThrottle[T any](throttle time.Duration) Option[T] {
	return func(m *Model[T]) {
		if throttle > 0 {
			m.cfg.ScrollThrottle = throttle
		}
	}
}

func WithKeyMap[T any](keyMap KeyMap) Option[T] {
	return func(m *Model[T]) {
		m.keyMap = keyMap
	}
}

// WithMemory attaches a shared scroll memory store under the given list key.
// Lists without memory simply never persist position.
func WithMemory[T any](key string, memory *ScrollMemory) Option[T] {
	return func(m *Model[T]) {
		m.key = key
		m.memory = memory
	}
}

// WithLoader attaches the caller's load-more command factory and the initial
// has-next-page flag.
func WithLoader[T any](loader Loader, hasNext bool) Option[T] {
	return func(m *Model[T]) {
		m.loader = loader
		m.pager.hasNext = hasNext
	}
}
