// Package buffer implements the single-owner heap block underneath every vector.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// An ArrayPtr owns one contiguous block of T sized at construction. It can give
// the block away (Release, MoveFrom) or exchange it (Swap), never share it.
// Value copies of an ArrayPtr are reported by go vet's copylocks check.
//
// Index access is unchecked at this layer; callers validate offsets.
// See arrayptr.go for the handle and stats.go for allocation accounting.
package buffer
