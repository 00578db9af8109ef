// File: core/buffer/arrayptr.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"github.com/momentics/simplevector/api"
	"github.com/momentics/simplevector/internal/assert"
)

// noCopy makes go vet flag value copies of the enclosing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ArrayPtr exclusively owns a contiguous block of T.
// The zero value is an empty handle that owns nothing.
type ArrayPtr[T any] struct {
	_       noCopy
	raw     []T
	// tracked marks blocks allocated by New, which take part in Stats.
	tracked bool
}

// Ensure compile-time interface compliance.
var _ api.OwningBuffer[any] = (*ArrayPtr[any])(nil)

// New allocates a block of length zero-valued slots.
// A zero length yields an empty handle without allocating.
func New[T any](length int) *ArrayPtr[T] {
	assert.That(length >= 0, "[buffer] negative length %d", length)
	p := &ArrayPtr[T]{}
	if length <= 0 {
		return p
	}
	p.raw = make([]T, length)
	p.tracked = true
	recordAlloc(length)
	return p
}

// Adopt takes ownership of caller-supplied storage.
// The caller must not touch raw afterwards.
func Adopt[T any](raw []T) *ArrayPtr[T] {
	if len(raw) == 0 {
		return &ArrayPtr[T]{}
	}
	return &ArrayPtr[T]{raw: raw}
}

// MoveFrom transfers src's block into p, dropping whatever p held.
// src is empty afterwards. Moving a handle into itself is a no-op.
func (p *ArrayPtr[T]) MoveFrom(src *ArrayPtr[T]) {
	if p == src {
		return
	}
	p.Free()
	p.raw, p.tracked = src.raw, src.tracked
	src.raw, src.tracked = nil, false
}

// At returns the address of slot index. No bounds check beyond the runtime's.
func (p *ArrayPtr[T]) At(index int) *T {
	return &p.raw[index]
}

// Load returns the value in slot index.
func (p *ArrayPtr[T]) Load(index int) T {
	return p.raw[index]
}

// Store overwrites slot index.
func (p *ArrayPtr[T]) Store(index int, v T) {
	p.raw[index] = v
}

// Get returns the owned block, or nil when empty. Ownership stays with p.
func (p *ArrayPtr[T]) Get() []T {
	return p.raw
}

// Len returns the slot count of the owned block.
func (p *ArrayPtr[T]) Len() int {
	return len(p.raw)
}

// Valid reports whether p owns a block.
func (p *ArrayPtr[T]) Valid() bool {
	return p.raw != nil
}

// Release relinquishes ownership and hands the block to the caller.
func (p *ArrayPtr[T]) Release() []T {
	raw := p.raw
	p.drop()
	return raw
}

// Free drops the owned block. Safe on an empty handle.
func (p *ArrayPtr[T]) Free() {
	if p.raw == nil {
		return
	}
	// Outstanding Get views observe zero values after Free.
	clear(p.raw)
	p.drop()
}

// Swap exchanges blocks with other in constant time.
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.raw, other.raw = other.raw, p.raw
	p.tracked, other.tracked = other.tracked, p.tracked
}

func (p *ArrayPtr[T]) drop() {
	if p.tracked {
		recordFree()
	}
	p.raw, p.tracked = nil, false
}
