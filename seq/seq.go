// Package seq holds materialized producer output.
//
// Decoders that naturally stream (records, rows, lines) read everything into a
// Sequence before the value reaches the cache. A cached Sequence can then be
// iterated from the start by every reader, on every hit.
package seq

import (
	"iter"
	"slices"
)

// Sequence is an immutable ordered list of items.
type Sequence[T any] struct {
	items []T
}

// Of takes ownership of items. The caller must not modify the slice afterwards.
func Of[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items}
}

func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the i-th item. It panics when i is out of range.
func (s *Sequence[T]) At(i int) T {
	return s.items[i]
}

// All returns a new iterator over index and item.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

// Values returns a new iterator over the items.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the items.
func (s *Sequence[T]) Slice() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}
