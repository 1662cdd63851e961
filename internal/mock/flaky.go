package mock

import (
	"fmt"

	"github.com/svannberg/rig/internal/model"
)

// Flaky wraps a source and fails every Nth page request. Exists so the load
// error and retry paths can actually be seen without a real backend.
type Flaky[T model.Item] struct {
	Source model.Source[T]
	Every  int

	calls int
}

func (f *Flaky[T]) Len() int {
	return f.Source.Len()
}

func (f *Flaky[T]) Page(offset, limit int) ([]T, error) {
	f.calls++
	if f.Every > 0 && f.calls%f.Every == 0 {
		return nil, fmt.Errorf("simulated backend failure on request %d", f.calls)
	}
	return f.Source.Page(offset, limit)
}
