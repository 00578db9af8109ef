// Package api
// Author: momentics
//
// Single-owner contiguous storage contract and allocation accounting.
//
// An owning buffer is the only handle allowed to release its block.
// Ownership moves between handles, it is never shared.

package api

// OwningBuffer describes an exclusively owned, fixed-length block of T.
type OwningBuffer[T any] interface {
	// Get returns the raw block (nil when empty) without giving up ownership.
	Get() []T

	// Len returns the number of slots in the owned block.
	Len() int

	// Valid reports whether a block is owned.
	Valid() bool

	// Release gives up ownership and returns the raw block.
	// The buffer is empty afterwards.
	Release() []T

	// Free drops the owned block. The buffer is empty afterwards.
	Free()
}

// BufferStats aggregates block allocation/release counters.
type BufferStats struct {
	TotalAlloc     int64
	TotalFree      int64
	InUse          int64
	SlotsAllocated int64
}
