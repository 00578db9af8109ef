// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"fmt"

	"github.com/momentics/simplevector/api"
	"github.com/momentics/simplevector/core/buffer"
	"github.com/momentics/simplevector/internal/assert"
)

// Vector is a dynamic array. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	items    buffer.ArrayPtr[T]
	size     int
	capacity int
}

// Ensure compile-time interface compliance.
var _ api.Sequence[any] = (*Vector[any])(nil)

// New returns an empty vector without allocating.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector of size zero-valued elements.
func WithSize[T any](size int) *Vector[T] {
	assert.That(size >= 0, "[vector] negative size %d", size)
	v := &Vector[T]{size: size, capacity: size}
	v.items.MoveFrom(buffer.New[T](size))
	return v
}

// Filled returns a vector of size copies of value.
func Filled[T any](size int, value T) *Vector[T] {
	v := WithSize[T](size)
	raw := v.items.Get()
	for i := range raw {
		raw[i] = value
	}
	return v
}

// Of returns a vector holding items in order.
func Of[T any](items ...T) *Vector[T] {
	v := WithSize[T](len(items))
	copy(v.items.Get(), items)
	return v
}

// FromReserve returns an empty vector with r.GetNewCapacity() slots allocated.
func FromReserve[T any](r ReserveProxy) *Vector[T] {
	v := New[T]()
	v.Reserve(r.GetNewCapacity())
	return v
}

// Clone deep-copies the live elements. The clone's capacity equals its size.
func (v *Vector[T]) Clone() *Vector[T] {
	out := WithSize[T](v.size)
	copy(out.items.Get(), v.Data())
	return out
}

// Move transfers v's block and counters into a new vector; v is left empty
// with zero size and capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	out.items.MoveFrom(&v.items)
	out.size, v.size = v.size, 0
	out.capacity, v.capacity = v.capacity, 0
	return out
}

// Assign replaces v's contents with a deep copy of rhs.
func (v *Vector[T]) Assign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	tmp := rhs.Clone()
	v.Swap(tmp)
	tmp.items.Free()
}

// MoveAssign takes over rhs's storage; rhs is left empty.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	tmp := rhs.Move()
	v.Swap(tmp)
	tmp.items.Free()
}

// Swap exchanges block, size and capacity with other. No element moves.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
