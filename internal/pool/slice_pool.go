// Package pool provides typed sync.Pool wrappers for per-call scratch slices.
package pool

import "sync"

// SlicePool recycles slices of T between calls.
//
// The zero value is not usable; create pools with NewSlicePool.
type SlicePool[T any] struct {
	p sync.Pool
}

// NewSlicePool creates a pool whose fresh slices start with the given capacity.
func NewSlicePool[T any](initialCap int) *SlicePool[T] {
	return &SlicePool[T]{
		p: sync.Pool{
			New: func() any {
				s := make([]T, 0, initialCap)
				return &s
			},
		},
	}
}

// Get retrieves an empty slice with at least minCap capacity.
//
// The caller must call the returned cleanup function once it no longer uses the
// slice (typically with defer). Elements are cleared before the slice is pooled
// again, so pooled slices never keep references alive.
//
// Example:
//
//	records, cleanup := recordPool.Get(64)
//	defer cleanup()
//	records = append(records, rec)
func (sp *SlicePool[T]) Get(minCap int) ([]T, func()) {
	ptr, _ := sp.p.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < minCap {
		slice = make([]T, 0, minCap)
	}

	return slice, func() {
		clear(slice[:cap(slice)])
		*ptr = slice[:0]
		sp.p.Put(ptr)
	}
}
