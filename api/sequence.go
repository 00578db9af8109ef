// Package api
// Author: momentics@gmail.com
//
// Indexable growable sequence contract.

package api

// Sequence is the read/append surface of a dynamic array.
type Sequence[T any] interface {
	// GetSize returns the number of live elements.
	GetSize() int
	// GetCapacity returns the number of allocated slots.
	GetCapacity() int
	// IsEmpty reports GetSize() == 0.
	IsEmpty() bool
	// At returns the element at index, or an ErrOutOfRange error.
	At(index int) (*T, error)
	// PushBack appends an element.
	PushBack(item T)
	// Clear drops all elements and keeps the capacity.
	Clear()
}
