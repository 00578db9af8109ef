// File: vector/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"iter"

	"github.com/momentics/simplevector/api"
)

// Iterator is a cursor addressing an element by offset from Begin.
// It stays meaningful only until the next reallocating operation.
type Iterator int

// Next returns the cursor one element further.
func (it Iterator) Next() Iterator { return it + 1 }

// Prev returns the cursor one element back.
func (it Iterator) Prev() Iterator { return it - 1 }

// Offset returns the element offset from Begin.
func (it Iterator) Offset() int { return int(it) }

// GetSize returns the number of live elements.
func (v *Vector[T]) GetSize() int { return v.size }

// GetCapacity returns the number of allocated slots.
func (v *Vector[T]) GetCapacity() int { return v.capacity }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Index returns the address of element index without checking it against
// the size. Indexing past the size is undefined behavior.
func (v *Vector[T]) Index(index int) *T {
	return v.items.At(index)
}

// Get returns element index, unchecked like Index.
func (v *Vector[T]) Get(index int) T {
	return v.items.Load(index)
}

// Set overwrites element index, unchecked like Index.
func (v *Vector[T]) Set(index int, value T) {
	v.items.Store(index, value)
}

// At returns the address of element index, or an error matching
// api.ErrOutOfRange when index is not below the size.
func (v *Vector[T]) At(index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, api.NewError(api.ErrCodeOutOfRange, "index must be less than vector size").
			WithContext("index", index).
			WithContext("size", v.size)
	}
	return v.items.At(index), nil
}

// Begin returns the cursor of the first element.
func (v *Vector[T]) Begin() Iterator { return 0 }

// End returns the cursor one past the last element.
func (v *Vector[T]) End() Iterator { return Iterator(v.size) }

// Elem returns the address of the element under it. Unchecked.
func (v *Vector[T]) Elem(it Iterator) *T {
	return v.items.At(int(it))
}

// Data returns the live elements as a view over the owned block.
// The view is nil for a vector that never allocated.
func (v *Vector[T]) Data() []T {
	raw := v.items.Get()
	if raw == nil {
		return nil
	}
	return raw[:v.size:v.size]
}

// All yields index/value pairs of the live elements in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.items.Load(i)) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.items.Load(i)) {
				return
			}
		}
	}
}
