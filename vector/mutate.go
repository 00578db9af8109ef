// File: vector/mutate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"github.com/momentics/simplevector/core/buffer"
	"github.com/momentics/simplevector/internal/assert"
)

// Clear drops every element. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the size to newSize. Elements that become live are reset to
// the zero value; growing past the capacity reallocates to at least
// max(newSize, 2*capacity).
func (v *Vector[T]) Resize(newSize int) {
	assert.That(newSize >= 0, "[vector] negative size %d", newSize)
	switch {
	case newSize <= v.size:
		v.size = newSize
	case newSize <= v.capacity:
		clear(v.items.Get()[v.size:newSize])
		v.size = newSize
	default:
		// Fresh blocks are zeroed, so [size, newSize) needs no reset.
		v.reallocate(max(newSize, 2*v.capacity))
		v.size = newSize
	}
}

// Reserve grows the capacity to exactly newCapacity when it exceeds the
// current one. Size and elements are unchanged; smaller requests are no-ops.
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity > v.capacity {
		v.reallocate(newCapacity)
	}
}

// PushBack appends item, doubling the capacity when full.
func (v *Vector[T]) PushBack(item T) {
	if v.size == v.capacity {
		v.reallocate(v.grownCapacity())
	}
	v.items.Store(v.size, item)
	v.size++
}

// Insert places value before pos and returns the cursor of the inserted
// element. pos must lie in [Begin, End]; End appends.
func (v *Vector[T]) Insert(pos Iterator, value T) Iterator {
	assert.InRange(int(pos), 0, v.size, "[vector] insert position")
	n := int(pos)
	if v.size < v.capacity {
		raw := v.items.Get()
		copy(raw[n+1:v.size+1], raw[n:v.size])
		raw[n] = value
		v.size++
		return pos
	}

	newCapacity := v.grownCapacity()
	fresh := buffer.New[T](newCapacity)
	src, dst := v.items.Get(), fresh.Get()
	copy(dst, src[:n])
	dst[n] = value
	copy(dst[n+1:], src[n:v.size])
	v.replace(fresh, newCapacity)
	v.size++
	return pos
}

// PopBack drops the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assert.That(v.size > 0, "[vector] PopBack on empty vector")
	v.size--
}

// Erase removes the element at pos and returns the cursor now holding the
// following element (End if the last one was removed). pos must lie in
// [Begin, End).
func (v *Vector[T]) Erase(pos Iterator) Iterator {
	assert.InRange(int(pos), 0, v.size-1, "[vector] erase position")
	n := int(pos)
	raw := v.items.Get()
	copy(raw[n:v.size-1], raw[n+1:v.size])
	v.size--
	return pos
}

// grownCapacity is the doubling policy: 1 for an unallocated vector.
func (v *Vector[T]) grownCapacity() int {
	return max(1, 2*v.capacity)
}

// reallocate moves the live prefix into a fresh block of newCapacity slots.
func (v *Vector[T]) reallocate(newCapacity int) {
	fresh := buffer.New[T](newCapacity)
	copy(fresh.Get(), v.Data())
	v.replace(fresh, newCapacity)
}

// replace installs fresh as the owned block and frees the previous one.
func (v *Vector[T]) replace(fresh *buffer.ArrayPtr[T], newCapacity int) {
	v.items.Swap(fresh)
	fresh.Free()
	v.capacity = newCapacity
}
