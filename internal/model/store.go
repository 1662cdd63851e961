package model

import (
	"strings"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/svannberg/rig/internal/style"
)

// Item is anything the dashboard can list: keyed, timestamped, and able to
// render itself at a given width. SearchText is the haystack the text filter
// matches against.
type Item interface {
	Key() string
	When() time.Time
	Render(width int, styles style.Styles) string
	SearchText() string
}

// Source serves ordered pages of items to the infinite loader.
type Source[T Item] interface {
	Page(offset, limit int) ([]T, error)
	Len() int
}

// Store keeps items ordered by timestamp in a red-black tree, ties broken by
// key so insertion order never leaks into iteration order.
type Store[T Item] struct {
	items *redblacktree.Tree
}

func itemComparator(a, b interface{}) int {
	e1 := a.(Item)
	e2 := b.(Item)
	switch {
	case e1.When().Before(e2.When()):
		return -1
	case e1.When().After(e2.When()):
		return 1
	default:
		switch {
		case e1.Key() < e2.Key():
			return -1
		case e1.Key() > e2.Key():
			return 1
		}
		return 0
	}
}

func NewStore[T Item]() *Store[T] {
	return &Store[T]{items: redblacktree.NewWith(itemComparator)}
}

func (s *Store[T]) Put(item T) {
	s.items.Put(item, nil)
}

func (s *Store[T]) Len() int {
	return s.items.Size()
}

// Page returns up to limit items starting at offset, in timestamp order.
// Offsets past the end return an empty page rather than an error.
func (s *Store[T]) Page(offset, limit int) ([]T, error) {
	if offset < 0 || limit <= 0 {
		return nil, nil
	}
	var page []T
	it := s.items.Iterator()
	i := 0
	for it.Next() {
		if i >= offset {
			page = append(page, it.Key().(T))
			if len(page) == limit {
				break
			}
		}
		i++
	}
	return page, nil
}

// All returns every item in timestamp order.
func (s *Store[T]) All() []T {
	all := make([]T, 0, s.items.Size())
	it := s.items.Iterator()
	for it.Next() {
		all = append(all, it.Key().(T))
	}
	return all
}

// Filtered wraps a source with a case-insensitive substring filter, serving
// only matching items. Used when a text filter is applied to a list.
type Filtered[T Item] struct {
	src  Source[T]
	text string
}

func NewFiltered[T Item](src Source[T], text string) *Filtered[T] {
	return &Filtered[T]{src: src, text: strings.ToLower(text)}
}

func (f *Filtered[T]) matching() []T {
	all, err := f.src.Page(0, f.src.Len())
	if err != nil {
		return nil
	}
	var out []T
	for _, item := range all {
		if strings.Contains(strings.ToLower(item.SearchText()), f.text) {
			out = append(out, item)
		}
	}
	return out
}

func (f *Filtered[T]) Len() int {
	return len(f.matching())
}

func (f *Filtered[T]) Page(offset, limit int) ([]T, error) {
	items := f.matching()
	if offset < 0 || limit <= 0 || offset >= len(items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}
