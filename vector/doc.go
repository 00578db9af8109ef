// Package vector
// Author: momentics <momentics@gmail.com>
//
// Growable contiguous array of T on top of a single-owner buffer.
//
// A Vector tracks a logical size over an owned block whose length is the
// capacity. Growth always builds a fresh block (doubling, starting at 1),
// copies the live prefix across and exchanges blocks; the old block is freed.
//
// Cursors (Iterator) are element offsets. Any reallocating operation
// (Reserve, growing Resize, PushBack or Insert at full capacity) invalidates
// every previously obtained cursor and every Data view.
//
// A Vector is not safe for concurrent use. Copying a Vector by value is
// reported by go vet; use Clone or Move.
package vector
