package vlist

import "strconv"

// KeyFunc returns a stable identity for an item. Keys let the engine keep
// recorded heights across re-renders when the underlying items have not
// structurally changed.
type KeyFunc[T any] func(item T, index int) string

// RenderFunc produces the visible content for one item at its assigned
// geometry.
type RenderFunc[T any] func(item T, index int, style Style) string

// IndexKey keys items by position. Suitable only for append-only lists where
// indices never shift.
func IndexKey[T any](_ T, index int) string {
	return strconv.Itoa(index)
}
